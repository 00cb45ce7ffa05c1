// ./body.go

// Package jyotish computes sidereal charts: body positions, ascendant,
// whole-sign houses, divisional charts and the Vimshottari timeline.
package jyotish

/*
Package jyotish provides the closed set of chart bodies.

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
	"fmt"
	"strings"

	"github.com/mshafiee/jyotish/dasha"
)

// Body is one of the nine chart bodies.
type Body int

const (
	Sun Body = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu // mean ascending lunar node
	Ketu // descending node, derived from Rahu
)

// Bodies lists every Body in chart order.
var Bodies = [...]Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

// Modeled lists the bodies read from a BodySource.
var Modeled = [...]Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

var bodyNames = [...]string{"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu"}

func (b Body) String() string {
	if b < 0 || int(b) >= len(bodyNames) {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

// Valid reports whether b is a known body.
func (b Body) Valid() bool {
	return b >= Sun && b <= Ketu
}

// MarshalText implements encoding.TextMarshaler.
func (b Body) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("unknown body %d", int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Body) UnmarshalText(text []byte) error {
	v, err := ParseBody(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// ParseBody parses a case-insensitive body name.
func ParseBody(s string) (Body, error) {
	for i, n := range bodyNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return Body(i), nil
		}
	}
	return 0, fmt.Errorf("unknown body %q", s)
}

// DerivedFrom returns the body b is computed from. Only Ketu is derived.
func (b Body) DerivedFrom() (Body, bool) {
	if b == Ketu {
		return Rahu, true
	}
	return b, false
}

// Nature classifies natural benefics and malefics.
type Nature string

const (
	Benefic Nature = "Benefic"
	Malefic Nature = "Malefic"
)

// Nature returns the natural disposition of b.
func (b Body) Nature() Nature {
	switch b {
	case Jupiter, Venus, Moon, Mercury:
		return Benefic
	default:
		return Malefic
	}
}

// Lord returns b as a period ruler.
func (b Body) Lord() dasha.Lord {
	return dasha.Lord(b.String())
}
