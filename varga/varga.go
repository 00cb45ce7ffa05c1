// ./varga/varga.go

// Package varga maps longitudes into divisional (harmonic) charts.
package varga

/*
Package varga provides a rule-driven divisional chart transform.

This program is free software; you can redistribute it and/or
modify it under the terms of the GNU General Public License
as published by the Free Software Foundation; either version 2
of the License, or (at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program; if not, write to the Free Software
Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
02110-1301, USA.

Authorship:
Mohammad Shafiee authored this Go code.
*/

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/mshafiee/jyotish/angle"
)

// ErrInvalidRule is returned by NewRule for a non-positive fold count.
var ErrInvalidRule = errors.New("invalid divisional rule")

// Rule describes an n-fold subdivision of each sign. The part in sign s
// starting at partIndex 0 maps to sign (s + Offsets[s mod len(Offsets)]) mod 12
// and successive parts advance one sign each.
type Rule struct {
	N       int    `json:"n"`
	Name    string `json:"name,omitempty"`
	Offsets []int  `json:"offsets"`
}

// Built-in rules.
var (
	Rasi       = Rule{N: 1, Name: "Rasi", Offsets: []int{0}}
	Navamsa    = Rule{N: 9, Name: "Navamsa", Offsets: []int{0, 8, 4}}
	Dasamsa    = Rule{N: 10, Name: "Dasamsa", Offsets: []int{0, 8}}
	Dvadasamsa = Rule{N: 12, Name: "Dvadasamsa", Offsets: []int{0}}
	Shastiamsa = Rule{N: 60, Name: "Shastiamsa", Offsets: []int{0, 6}}
)

var registry = map[int]Rule{
	Rasi.N:       Rasi,
	Navamsa.N:    Navamsa,
	Dasamsa.N:    Dasamsa,
	Dvadasamsa.N: Dvadasamsa,
	Shastiamsa.N: Shastiamsa,
}

// NewRule builds a rule for an arbitrary fold count. With no offsets every
// sign starts from itself.
func NewRule(n int, offsets ...int) (Rule, error) {
	if n <= 0 {
		return Rule{}, fmt.Errorf("%w: n=%d", ErrInvalidRule, n)
	}
	if len(offsets) == 0 {
		offsets = []int{0}
	}
	o := make([]int, len(offsets))
	copy(o, offsets)
	return Rule{N: n, Name: fmt.Sprintf("D%d", n), Offsets: o}, nil
}

// Lookup returns a built-in rule by fold count.
func Lookup(n int) (Rule, bool) {
	r, ok := registry[n]
	return r, ok
}

// Builtin returns the built-in rules ordered by fold count.
func Builtin() []Rule {
	out := make([]Rule, 0, len(registry))
	for _, r := range registry {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].N < out[j].N })
	return out
}

// Label returns the conventional "Dn" label.
func (r Rule) Label() string {
	return fmt.Sprintf("D%d", r.N)
}

func (r Rule) n() int {
	if r.N <= 0 {
		return 1
	}
	return r.N
}

func (r Rule) offset(sign int) int {
	if len(r.Offsets) == 0 {
		return 0
	}
	return r.Offsets[sign%len(r.Offsets)]
}

// Apply maps a longitude into the divisional chart.
func (r Rule) Apply(long float64) float64 {
	sign, deg := r.transform(long)
	return float64(sign)*angle.SignWidth + deg
}

// Sign returns only the divisional sign of a longitude.
func (r Rule) Sign(long float64) int {
	s, _ := r.transform(long)
	return s
}

func (r Rule) transform(long float64) (int, float64) {
	n := r.n()
	s := angle.Sign(long)
	d := angle.DegreeInSign(long)
	width := angle.SignWidth / float64(n)

	part := int(math.Floor(d / width))
	if part > n-1 {
		part = n - 1
	}
	sign := ((s+r.offset(s)+part)%12 + 12) % 12

	deg := math.Mod(d, width) * float64(n)
	if deg >= angle.SignWidth {
		deg = math.Nextafter(angle.SignWidth, 0)
	}
	return sign, deg
}

// Placement is a body's position in a divisional chart.
type Placement struct {
	Longitude float64 `json:"longitude"`
	Sign      int     `json:"sign"`
	SignName  string  `json:"signName"`
	Degree    float64 `json:"degree"`
}

// Place maps a longitude and decomposes the result.
func (r Rule) Place(long float64) Placement {
	sign, deg := r.transform(long)
	return Placement{
		Longitude: float64(sign)*angle.SignWidth + deg,
		Sign:      sign,
		SignName:  angle.SignName(sign),
		Degree:    deg,
	}
}

// Compute applies rule to every longitude in the map.
func Compute[K comparable](rule Rule, longitudes map[K]float64) map[K]Placement {
	out := make(map[K]Placement, len(longitudes))
	for k, l := range longitudes {
		out[k] = rule.Place(l)
	}
	return out
}
