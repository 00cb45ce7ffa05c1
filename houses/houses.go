// ./houses/houses.go

// Package houses assigns whole-sign houses relative to an ascendant.
package houses

/*
Package houses provides whole-sign house assignment.

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

import "github.com/mshafiee/jyotish/angle"

// House pairs a house number (1-12) with the sign index occupying it.
type House struct {
	Number int    `json:"number"`
	Sign   int    `json:"sign"`
	Name   string `json:"signName"`
	Lord   string `json:"lord"`
}

// Of returns the whole-sign house (1-12) of longitude long for ascendant asc.
// The result depends only on the sign indices of both values.
func Of(long, asc float64) int {
	return (angle.Sign(long)-angle.Sign(asc)+12)%12 + 1
}

// Layout lists the twelve houses, the first being the ascendant's sign.
func Layout(asc float64) [12]House {
	var out [12]House
	first := angle.Sign(asc)
	for i := range out {
		s := (first + i) % 12
		out[i] = House{
			Number: i + 1,
			Sign:   s,
			Name:   angle.SignName(s),
			Lord:   angle.SignLord(s),
		}
	}
	return out
}

// Occupants groups keys by house. Keys appear in each house in the order
// given; keys missing from longitudes are skipped.
func Occupants[K comparable](order []K, longitudes map[K]float64, asc float64) [12][]K {
	var out [12][]K
	for _, k := range order {
		l, ok := longitudes[k]
		if !ok {
			continue
		}
		h := Of(l, asc) - 1
		out[h] = append(out[h], k)
	}
	return out
}
