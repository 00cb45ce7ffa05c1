// ./dasha/nakshatra.go

// Package dasha generates the Vimshottari planetary period timeline.
package dasha

/*
Package dasha provides the lunar mansion tables and lookup.

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
	"math"

	"github.com/mshafiee/jyotish/angle"
)

// Lord is a period ruler, named as the bodies are.
type Lord string

const (
	Ketu    Lord = "Ketu"
	Venus   Lord = "Venus"
	Sun     Lord = "Sun"
	Moon    Lord = "Moon"
	Mars    Lord = "Mars"
	Rahu    Lord = "Rahu"
	Jupiter Lord = "Jupiter"
	Saturn  Lord = "Saturn"
	Mercury Lord = "Mercury"
)

// Order is the cyclic sequence of period rulers.
var Order = [9]Lord{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}

var nominalYears = map[Lord]int{
	Ketu: 7, Venus: 20, Sun: 6, Moon: 10, Mars: 7,
	Rahu: 18, Jupiter: 16, Saturn: 19, Mercury: 17,
}

// CycleYears is the length of one full cycle of Order.
const CycleYears = 120

// SectorWidth is the span of one nakshatra, 13°20'.
const SectorWidth = 360.0 / 27

// Nakshatra is one of the 27 lunar mansions.
type Nakshatra struct {
	Name  string `json:"name"`
	Lord  Lord   `json:"lord"`
	Years int    `json:"years"`
}

var names = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}

// Nakshatras is the static mansion table, Ashwini first. Rulers repeat Order
// three times.
var Nakshatras = func() [27]Nakshatra {
	var t [27]Nakshatra
	for i, n := range names {
		l := Order[i%len(Order)]
		t[i] = Nakshatra{Name: n, Lord: l, Years: nominalYears[l]}
	}
	return t
}()

// Years returns the nominal period length of a ruler, or 0 if unknown.
func Years(l Lord) int {
	return nominalYears[l]
}

// Next returns the ruler following l in Order.
func Next(l Lord) Lord {
	for i, o := range Order {
		if o == l {
			return Order[(i+1)%len(Order)]
		}
	}
	return Order[0]
}

// Placement locates a longitude within its nakshatra.
type Placement struct {
	Index     int       `json:"index"`
	Nakshatra Nakshatra `json:"nakshatra"`
	DegreeIn  float64   `json:"degreeIn"`
	Fraction  float64   `json:"fraction"`
	Pada      int       `json:"pada"`
}

// Locate returns the nakshatra containing a sidereal longitude. Fraction is
// the elapsed part of the sector in [0, 1); Pada is the quarter, 1-4.
func Locate(long float64) Placement {
	l := angle.Normalize(long)
	idx := int(math.Floor(l / SectorWidth))
	if idx > 26 {
		idx = 26
	}
	in := l - float64(idx)*SectorWidth
	if in < 0 {
		in = 0
	}
	frac := in / SectorWidth
	if frac >= 1 {
		frac = math.Nextafter(1, 0)
	}
	pada := int(frac*4) + 1
	if pada > 4 {
		pada = 4
	}
	return Placement{
		Index:     idx,
		Nakshatra: Nakshatras[idx],
		DegreeIn:  in,
		Fraction:  frac,
		Pada:      pada,
	}
}

// Balance returns the ruler at birth and the unelapsed years of its period.
func Balance(moon float64) (Lord, float64) {
	p := Locate(moon)
	return p.Nakshatra.Lord, float64(p.Nakshatra.Years) * (1 - p.Fraction)
}
