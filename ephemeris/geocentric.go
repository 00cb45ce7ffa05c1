// ./ephemeris/geocentric.go
package ephemeris

/*
Package ephemeris provides apparent geocentric ecliptic longitudes from a DE file.

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
	"math"

	"github.com/mshafiee/jyotish"
	"github.com/mshafiee/jyotish/angle"
	"github.com/mshafiee/jyotish/ecliptic"
	"github.com/mshafiee/jyotish/timescale"
)

const (
	lightTimeIterations = 3
	secondsPerDay       = 86400.0
	speedOfLight        = 299792.458 // km/s
)

// targetOf maps a chart body to the file numbering.
func targetOf(b jyotish.Body) (Target, error) {
	switch b {
	case jyotish.Sun:
		return Sun, nil
	case jyotish.Moon:
		return Moon, nil
	case jyotish.Mercury:
		return Mercury, nil
	case jyotish.Venus:
		return Venus, nil
	case jyotish.Mars:
		return Mars, nil
	case jyotish.Jupiter:
		return Jupiter, nil
	case jyotish.Saturn:
		return Saturn, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedBody, b)
	}
}

// Position implements jyotish.BodySource. It returns the tropical geocentric
// longitude of b, referred to the ecliptic and equinox of date, and its rate
// in degrees per day, for a UT Julian day.
func (e *Ephemeris) Position(ctx context.Context, jd float64, b jyotish.Body) (jyotish.Position, error) {
	if err := ctx.Err(); err != nil {
		return jyotish.Position{}, err
	}
	target, err := targetOf(b)
	if err != nil {
		return jyotish.Position{}, err
	}

	et := timescale.TerrestrialTime(jd)
	earth, earthVel, err := e.State(et, Earth, SolarSystemBarycenter)
	if err != nil {
		return jyotish.Position{}, fmt.Errorf("earth: %w", err)
	}

	c := speedOfLight * secondsPerDay / e.h.au // AU per day
	var p, v Vector
	lt := 0.0
	for i := 0; i < lightTimeIterations; i++ {
		tp, tv, err := e.State(et-lt, target, SolarSystemBarycenter)
		if err != nil {
			return jyotish.Position{}, fmt.Errorf("%s: %w", b, err)
		}
		p, v = tp.Sub(earth), tv.Sub(earthVel)
		lt = p.Norm() / c
	}

	lon, rate := eclipticLongitude(p, v)
	lon += ecliptic.GeneralPrecession(jd)
	rate += ecliptic.GeneralPrecessionRate(jd)

	if e.h.ipt[iptNutations][1] > 0 {
		dpsi, dpsiRate, err := e.State(et, Nutations, 0)
		if err != nil {
			return jyotish.Position{}, fmt.Errorf("nutation: %w", err)
		}
		lon += angle.Rad2Deg(dpsi.X)
		rate += angle.Rad2Deg(dpsiRate.X)
	}
	return jyotish.Position{Longitude: angle.Normalize(lon), Speed: rate}, nil
}

// eclipticLongitude rotates an ICRF (mean equator of J2000) state onto the
// J2000 ecliptic and returns the longitude and its rate in degrees and
// degrees per day.
func eclipticLongitude(p, v Vector) (float64, float64) {
	eps := angle.Deg2Rad(ecliptic.MeanObliquityJ2000)
	se, ce := math.Sin(eps), math.Cos(eps)

	x, y := p.X, p.Y*ce+p.Z*se
	vx, vy := v.X, v.Y*ce+v.Z*se

	lon := math.Atan2(y, x)
	rate := (x*vy - y*vx) / (x*x + y*y)
	return angle.Normalize(angle.Rad2Deg(lon)), angle.Rad2Deg(rate)
}
