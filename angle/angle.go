// ./angle/angle.go

// Package angle implements degree arithmetic on ecliptic longitudes.
package angle

/*
Package angle provides normalization and sign decomposition of ecliptic longitudes.

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
	"math"
)

// SignWidth is the width of one zodiac sign in degrees.
const SignWidth = 30.0

// Normalize folds any finite angle into [0, 360).
func Normalize(deg float64) float64 {
	n := math.Mod(deg, 360)
	if n < 0 {
		n += 360
	}
	if n >= 360 { // -1e-15 + 360 rounds up
		return 0
	}
	return n
}

// Sign returns the zodiac sign index 0-11 (Aries = 0) of a longitude.
func Sign(long float64) int {
	s := int(math.Floor(Normalize(long) / SignWidth))
	if s > 11 {
		s = 11
	}
	return s
}

// DegreeInSign returns the offset of a longitude inside its sign, in [0, 30).
func DegreeInSign(long float64) float64 {
	return math.Mod(Normalize(long), SignWidth)
}

// Distance returns the forward arc from a to b, in [0, 360).
func Distance(a, b float64) float64 {
	return Normalize(b - a)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180.0 / math.Pi
}

// DMS is a longitude split into sign and sexagesimal parts.
type DMS struct {
	Sign    int     `json:"sign"`
	Degrees int     `json:"degrees"`
	Minutes int     `json:"minutes"`
	Seconds int     `json:"seconds"`
	Decimal float64 `json:"degreeInSign"`
}

// Split decomposes a longitude. Minutes and seconds are truncated, never rounded,
// so a value never displays as 60'.
func Split(long float64) DMS {
	d := DegreeInSign(long)
	whole, frac := math.Modf(d)
	mins, mfrac := math.Modf(frac * 60)
	return DMS{
		Sign:    Sign(long),
		Degrees: int(whole),
		Minutes: int(mins),
		Seconds: int(math.Floor(mfrac * 60)),
		Decimal: d,
	}
}

// String renders the split as "Leo 15° 30' 12\"".
func (d DMS) String() string {
	return fmt.Sprintf("%s %d° %d' %d\"", SignName(d.Sign), d.Degrees, d.Minutes, d.Seconds)
}

// Format renders a longitude as "Leo 15° 30'".
func Format(long float64) string {
	d := Split(long)
	return fmt.Sprintf("%s %d° %d'", SignName(d.Sign), d.Degrees, d.Minutes)
}

// FormatDetailed renders a longitude with seconds.
func FormatDetailed(long float64) string {
	return Split(long).String()
}
