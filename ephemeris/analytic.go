// ./ephemeris/analytic.go
package ephemeris

/*
Package ephemeris provides a low-precision analytic body source.

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
	"math"

	"github.com/mshafiee/jyotish"
	"github.com/mshafiee/jyotish/angle"
	"github.com/mshafiee/jyotish/ecliptic"
	"github.com/mshafiee/jyotish/timescale"
)

// Analytic computes positions from mean Keplerian elements and a truncated
// lunar series. It needs no data file. Planets are good to about an
// arcminute between 1800 and 2050 and degrade slowly outside; the Moon to a
// few arcminutes.
type Analytic struct{}

// elements are mean orbital elements referred to the J2000 ecliptic and
// equinox: semi-major axis (AU), eccentricity, inclination, mean longitude,
// longitude of perihelion and longitude of the ascending node (degrees).
type elements struct {
	a, e, i, l, peri, node float64
}

// keplerian holds elements at J2000 and their rates per Julian century.
type keplerian struct {
	at, rate elements
}

// Approximate positions of the major planets, E M Standish (JPL), Table 1.
var orbits = map[Target]keplerian{
	Mercury: {
		elements{0.38709927, 0.20563593, 7.00497902, 252.25032350, 77.45779628, 48.33076593},
		elements{0.00000037, 0.00001906, -0.00594749, 149472.67411175, 0.16047689, -0.12534081},
	},
	Venus: {
		elements{0.72333566, 0.00677672, 3.39467605, 181.97909950, 131.60246718, 76.67984255},
		elements{0.00000390, -0.00004107, -0.00078890, 58517.81538729, 0.00268329, -0.27769418},
	},
	EarthMoonBarycenter: {
		elements{1.00000261, 0.01671123, -0.00001531, 100.46457166, 102.93768193, 0.0},
		elements{0.00000562, -0.00004392, -0.01294668, 35999.37244981, 0.32327364, 0.0},
	},
	Mars: {
		elements{1.52371034, 0.09339410, 1.84969142, -4.55343205, -23.94362959, 49.55953891},
		elements{0.00001847, 0.00007882, -0.00813131, 19140.30268499, 0.44441088, -0.29257343},
	},
	Jupiter: {
		elements{5.20288700, 0.04838624, 1.30439695, 34.39644051, 14.72847983, 100.47390909},
		elements{-0.00011607, -0.00013253, -0.00183714, 3034.74612775, 0.21252668, 0.20469106},
	},
	Saturn: {
		elements{9.53667594, 0.05386179, 2.48599187, 49.95424423, 92.59887831, 113.66242448},
		elements{-0.00125060, -0.00050991, 0.00193609, 1222.49362201, -0.41897216, -0.28867794},
	},
}

// lightDay is the light time for one AU, in days.
const lightDay = 0.0057755183

// Position implements jyotish.BodySource with a central-difference speed.
func (a Analytic) Position(ctx context.Context, jd float64, b jyotish.Body) (jyotish.Position, error) {
	if err := ctx.Err(); err != nil {
		return jyotish.Position{}, err
	}
	target, err := targetOf(b)
	if err != nil {
		return jyotish.Position{}, err
	}
	h := 0.1
	if target == Moon {
		h = 0.05
	}
	lon := a.longitude(jd, target)
	delta := angle.Normalize(a.longitude(jd+h, target)-a.longitude(jd-h, target)+180) - 180
	return jyotish.Position{Longitude: lon, Speed: delta / (2 * h)}, nil
}

// longitude returns the geocentric ecliptic longitude of date, in degrees.
func (Analytic) longitude(jd float64, target Target) float64 {
	t := timescale.Centuries(timescale.TerrestrialTime(jd))
	if target == Moon {
		return moonLongitude(t)
	}

	earth := heliocentric(orbits[EarthMoonBarycenter], t)
	var p Vector
	if target == Sun {
		p = earth.Scale(-1)
	} else {
		p = heliocentric(orbits[target], t).Sub(earth)
		lt := p.Norm() * lightDay
		p = heliocentric(orbits[target], t-lt/timescale.DaysPerCentury).Sub(earth)
	}
	lon := angle.Rad2Deg(math.Atan2(p.Y, p.X))
	return angle.Normalize(lon + ecliptic.GeneralPrecession(jd))
}

// heliocentric solves Kepler's equation and returns the position on the
// J2000 ecliptic in AU, t in Julian centuries from J2000.
func heliocentric(k keplerian, t float64) Vector {
	el := elements{
		a:    k.at.a + k.rate.a*t,
		e:    k.at.e + k.rate.e*t,
		i:    k.at.i + k.rate.i*t,
		l:    k.at.l + k.rate.l*t,
		peri: k.at.peri + k.rate.peri*t,
		node: k.at.node + k.rate.node*t,
	}
	omega := angle.Deg2Rad(el.peri - el.node) // argument of perihelion
	node := angle.Deg2Rad(el.node)
	inc := angle.Deg2Rad(el.i)
	m := angle.Deg2Rad(angle.Normalize(el.l-el.peri+180) - 180)

	ea := kepler(m, el.e)
	xp := el.a * (math.Cos(ea) - el.e)
	yp := el.a * math.Sqrt(1-el.e*el.e) * math.Sin(ea)

	cw, sw := math.Cos(omega), math.Sin(omega)
	cn, sn := math.Cos(node), math.Sin(node)
	ci, si := math.Cos(inc), math.Sin(inc)
	return Vector{
		X: (cw*cn-sw*sn*ci)*xp + (-sw*cn-cw*sn*ci)*yp,
		Y: (cw*sn+sw*cn*ci)*xp + (-sw*sn+cw*cn*ci)*yp,
		Z: (sw*si)*xp + (cw*si)*yp,
	}
}

// kepler solves M = E - e sin E by Newton iteration, radians.
func kepler(m, e float64) float64 {
	ea := m + e*math.Sin(m)
	for i := 0; i < 30; i++ {
		d := (m - (ea - e*math.Sin(ea))) / (1 - e*math.Cos(ea))
		ea += d
		if math.Abs(d) < 1e-12 {
			break
		}
	}
	return ea
}

// lunarTerm multiplies the sine of D, M, M' and F by a coefficient in
// millionths of a degree.
type lunarTerm struct {
	d, m, mp, f float64
	coef        float64
}

// Largest periodic terms in the Moon's longitude (Meeus, chapter 47).
var lunarTerms = []lunarTerm{
	{0, 0, 1, 0, 6288774},
	{2, 0, -1, 0, 1274027},
	{2, 0, 0, 0, 658314},
	{0, 0, 2, 0, 213618},
	{0, 1, 0, 0, -185116},
	{0, 0, 0, 2, -114332},
	{2, 0, -2, 0, 58793},
	{2, -1, -1, 0, 57066},
	{2, 0, 1, 0, 53322},
	{2, -1, 0, 0, 45758},
	{0, 1, -1, 0, -40923},
	{1, 0, 0, 0, -34720},
	{0, 1, 1, 0, -30383},
	{2, 0, 0, -2, 15327},
	{0, 0, 1, 2, -12528},
	{0, 0, 1, -2, 10980},
	{4, 0, -1, 0, 10675},
	{0, 0, 3, 0, 10034},
	{4, 0, -2, 0, 8548},
	{2, 1, -1, 0, -7888},
	{2, 1, 0, 0, -6766},
	{1, 0, -1, 0, -5163},
	{1, 1, 0, 0, 4987},
	{2, -1, 1, 0, 4036},
	{2, 0, 2, 0, 3994},
	{4, 0, 0, 0, 3861},
	{2, 0, -3, 0, 3665},
	{0, 1, -2, 0, -2689},
	{2, 0, -1, 2, -2602},
	{2, -1, -2, 0, 2390},
	{1, 0, 1, 0, -2348},
	{2, -2, 0, 0, 2236},
	{0, 1, 2, 0, -2120},
	{0, 2, 0, 0, -2069},
}

// moonLongitude returns the geocentric longitude of the Moon referred to the
// mean equinox of date, t in Julian centuries (TT) from J2000.
func moonLongitude(t float64) float64 {
	t2, t3, t4 := t*t, t*t*t, t*t*t*t
	lp := 218.3164477 + 481267.88123421*t - 0.0015786*t2 + t3/538841 - t4/65194000
	d := 297.8501921 + 445267.1114034*t - 0.0018819*t2 + t3/545868 - t4/113065000
	m := 357.5291092 + 35999.0502909*t - 0.0001536*t2 + t3/24490000
	mp := 134.9633964 + 477198.8675055*t + 0.0087414*t2 + t3/69699 - t4/14712000
	f := 93.2720950 + 483202.0175233*t - 0.0036539*t2 - t3/3526000 + t4/863310000
	a1 := 119.75 + 131.849*t
	a2 := 53.09 + 479264.290*t
	ecc := 1 - 0.002516*t - 0.0000074*t2

	sum := 0.0
	for _, term := range lunarTerms {
		arg := angle.Deg2Rad(term.d*d + term.m*m + term.mp*mp + term.f*f)
		c := term.coef
		switch math.Abs(term.m) {
		case 1:
			c *= ecc
		case 2:
			c *= ecc * ecc
		}
		sum += c * math.Sin(arg)
	}
	sum += 3958*math.Sin(angle.Deg2Rad(a1)) +
		1962*math.Sin(angle.Deg2Rad(lp-f)) +
		318*math.Sin(angle.Deg2Rad(a2))
	return angle.Normalize(lp + sum/1e6)
}
