// ./ephemeris/masses.go
package ephemeris

/*
Package ephemeris provides body masses from the header constants.

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
	"strings"
)

// Mass is the gravitational parameter of one body as recorded in the file.
type Mass struct {
	Name    string  `json:"name"`
	GM      float64 `json:"gm"`      // AU^3/day^2
	GMKm    float64 `json:"gmKm"`    // km^3/s^2
	Ratio   float64 `json:"ratio"`   // mass(obj)/mass(sun)
	Inverse float64 `json:"inverse"` // mass(sun)/mass(obj)
}

// massConstants maps GM constant names to body names. Earth and Moon are
// split from GMB with EMRAT.
var massConstants = []struct{ constant, name string }{
	{"GMS", "Sun"},
	{"GM1", "Mercury"},
	{"GM2", "Venus"},
	{"GMB", "EMB"},
	{"GM4", "Mars"},
	{"GM5", "Jupiter"},
	{"GM6", "Saturn"},
	{"GM7", "Uranus"},
	{"GM8", "Neptune"},
	{"GM9", "Pluto"},
	{"MA0001", "Ceres"},
	{"MA0002", "Pallas"},
	{"MA0003", "Juno"},
	{"MA0004", "Vesta"},
}

// Masses returns the masses the file carries, Sun first. Bodies without a
// constant are left out.
func (e *Ephemeris) Masses() ([]Mass, error) {
	sun, err := e.Constant("GMS")
	if err != nil {
		return nil, fmt.Errorf("masses: %w", err)
	}
	au := e.h.au
	if v, err := e.Constant("AU"); err == nil && v > 0 {
		au = v
	}
	emrat := e.h.emrat
	if v, err := e.Constant("EMRAT"); err == nil && v > 0 {
		emrat = v
	}

	mass := func(name string, gm float64) Mass {
		return Mass{
			Name:    name,
			GM:      gm,
			GMKm:    gm * au * au * au / (secondsPerDay * secondsPerDay),
			Ratio:   gm / sun,
			Inverse: sun / gm,
		}
	}

	var out []Mass
	for _, mc := range massConstants {
		gm, err := e.Constant(mc.constant)
		if err != nil || gm == 0 {
			continue
		}
		out = append(out, mass(mc.name, gm))
		if strings.EqualFold(mc.constant, "GMB") {
			moon := gm / (1 + emrat)
			out = append(out, mass("Earth", gm-moon), mass("Moon", moon))
		}
	}
	return out, nil
}
