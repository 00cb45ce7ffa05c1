// ./ephemeris/target.go
package ephemeris

/*
Package ephemeris provides the body numbering used by State.

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
Mohammad Shafiee authored this Go code as a translation of the original C code.
The C version was a translation of Fortran-77 code originally written by
Piotr A. Dybczynski and later revised by Bill J Gray.
*/

import (
	"fmt"
	"math"
)

// Target numbers a body or quantity the way JPL files do.
type Target int

// Body numbering convention:
//
//	1 = Mercury, 2 = Venus, 3 = Earth, 4 = Mars, 5 = Jupiter, 6 = Saturn, 7 = Uranus, 8 = Neptune,
//	9 = Pluto, 10 = Moon, 11 = Sun, 12 = Solar-system barycenter, 13 = Earth-moon barycenter,
//	14 = Nutations (longitude and obliquity), 15 = Librations, 16 = Lunar mantle omega_x,omega_y,omega_z,
//	17 = TT-TDB.
const (
	Mercury Target = iota + 1
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	Moon
	Sun
	SolarSystemBarycenter
	EarthMoonBarycenter
	Nutations
	Librations
	LunarMantleOmega
	TTMinusTDB
)

var targetNames = [...]string{
	"", "Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune",
	"Pluto", "Moon", "Sun", "SSB", "EMB", "Nutations", "Librations", "MantleOmega", "TT-TDB",
}

func (t Target) String() string {
	if t < Mercury || t > TTMinusTDB {
		return fmt.Sprintf("Target(%d)", int(t))
	}
	return targetNames[t]
}

// Special reports whether t is one of the non-positional quantities (14-17).
func (t Target) Special() bool {
	return t >= Nutations && t <= TTMinusTDB
}

// Vector is a Cartesian triple. Positions are in AU and velocities in AU/day
// for bodies; radians and radians/day for nutations and librations.
type Vector struct {
	X, Y, Z float64
}

// Add returns v + u.
func (v Vector) Add(u Vector) Vector { return Vector{v.X + u.X, v.Y + u.Y, v.Z + u.Z} }

// Sub returns v - u.
func (v Vector) Sub(u Vector) Vector { return Vector{v.X - u.X, v.Y - u.Y, v.Z - u.Z} }

// Scale returns s*v.
func (v Vector) Scale(s float64) Vector { return Vector{v.X * s, v.Y * s, v.Z * s} }

// Norm returns the length of v.
func (v Vector) Norm() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
