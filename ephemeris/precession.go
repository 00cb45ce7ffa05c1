// ./ephemeris/precession.go
package ephemeris

/*
Package ephemeris provides the precession-based Lahiri ayanamsa.

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
	"context"
	"fmt"

	"github.com/mshafiee/jyotish/ayanamsa"
	"github.com/mshafiee/jyotish/ecliptic"
	"github.com/mshafiee/jyotish/timescale"
)

// Lahiri returns the Lahiri ayanamsa in degrees for a UT Julian day: the
// defined value at the 1956 reference epoch carried forward by general
// precession in longitude.
func Lahiri(jd float64) float64 {
	return ayanamsa.LahiriEpochValue +
		ecliptic.GeneralPrecession(jd) -
		ecliptic.GeneralPrecession(ayanamsa.LahiriEpochJD)
}

// standard evaluates a sidereal standard. Only Lahiri is modeled.
func standard(jd float64, std ayanamsa.Standard) (float64, error) {
	switch std {
	case ayanamsa.Lahiri, "":
		return Lahiri(jd), nil
	default:
		return 0, fmt.Errorf("%w: %q", ayanamsa.ErrUnknownStandard, std)
	}
}

// Ayanamsa implements ayanamsa.Source. Requests outside the file span fail
// with ErrOutsideRange so that the handle is never used beyond its data.
func (e *Ephemeris) Ayanamsa(ctx context.Context, jd float64, std ayanamsa.Standard) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	e.mu.Lock()
	closed := e.closed
	e.mu.Unlock()
	if closed {
		return 0, ErrClosed
	}
	if et := timescale.TerrestrialTime(jd); !e.Covers(et) {
		return 0, fmt.Errorf("%w: JED %.4f not in [%.1f, %.1f]", ErrOutsideRange, et, e.h.start, e.h.end)
	}
	return standard(jd, std)
}

// Ayanamsa implements ayanamsa.Source with the same precession model.
func (Analytic) Ayanamsa(ctx context.Context, jd float64, std ayanamsa.Standard) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return standard(jd, std)
}
