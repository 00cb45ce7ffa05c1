// ./ecliptic/ecliptic.go

// Package ecliptic derives sidereal time, obliquity and the ascendant.
package ecliptic

/*
Package ecliptic provides sidereal time, obliquity and ascendant geometry.

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

	"github.com/mshafiee/jyotish/angle"
	"github.com/mshafiee/jyotish/ayanamsa"
	"github.com/mshafiee/jyotish/timescale"
)

// PolarLimit is the absolute latitude at and beyond which the ascendant is
// not computed.
const PolarLimit = 89.9

// ErrPolarLatitude is returned by Ascendant for |latitude| >= PolarLimit.
var ErrPolarLatitude = errors.New("ascendant undefined at polar latitude")

// MeanObliquityJ2000 is the mean obliquity of the ecliptic at J2000, in degrees.
const MeanObliquityJ2000 = 23.4392911

// GreenwichSiderealTime returns mean sidereal time at Greenwich in degrees
// for a UT Julian day (IAU 1982).
func GreenwichSiderealTime(jd float64) float64 {
	t := timescale.Centuries(jd)
	gst := 280.46061837 +
		360.98564736629*(jd-timescale.J2000) +
		0.000387933*t*t -
		t*t*t/38710000
	return angle.Normalize(gst)
}

// LocalSiderealTime returns GST shifted by east-positive longitude, in degrees.
func LocalSiderealTime(jd, longitude float64) float64 {
	return angle.Normalize(GreenwichSiderealTime(jd) + longitude)
}

// Obliquity returns the obliquity of the ecliptic in degrees. Approximate mode
// uses the J2000 constant; precise mode the IAU 1980 polynomial.
func Obliquity(jd float64, mode ayanamsa.Mode) float64 {
	if mode == ayanamsa.Approximate {
		return MeanObliquityJ2000
	}
	return MeanObliquity(jd)
}

// MeanObliquity evaluates the IAU 1980 mean obliquity polynomial.
func MeanObliquity(jd float64) float64 {
	t := timescale.Centuries(jd)
	sec := 21.448 - 46.8150*t - 0.00059*t*t + 0.001813*t*t*t
	return 23 + 26.0/60 + sec/3600
}

// Ascendant returns the tropical ascendant in degrees for local sidereal time
// lst, geographic latitude lat and obliquity eps, all in degrees.
func Ascendant(lst, lat, eps float64) (float64, error) {
	if math.IsNaN(lat) || math.IsNaN(lst) || math.IsNaN(eps) {
		return 0, fmt.Errorf("ascendant: non-finite input")
	}
	if math.Abs(lat) >= PolarLimit {
		return 0, fmt.Errorf("%w: latitude %.4f", ErrPolarLatitude, lat)
	}
	ramc := angle.Deg2Rad(lst)
	e := angle.Deg2Rad(eps)
	phi := angle.Deg2Rad(lat)

	y := math.Cos(ramc)
	x := -math.Sin(ramc)*math.Cos(e) - math.Tan(phi)*math.Sin(e)
	return angle.Normalize(angle.Rad2Deg(math.Atan2(y, x))), nil
}

// Sidereal converts a tropical longitude by subtracting the ayanamsa.
func Sidereal(tropical, ayanamsaDeg float64) float64 {
	return angle.Normalize(tropical - ayanamsaDeg)
}

// MeanNode returns the longitude of the mean ascending lunar node (Meeus 47.7)
// and its rate in degrees per day.
func MeanNode(jd float64) (longitude, speed float64) {
	t := timescale.Centuries(jd)
	t2 := t * t
	t3 := t2 * t
	longitude = 125.0445479 -
		1934.1362891*t +
		0.0020754*t2 +
		t3/467441 -
		t3*t/60616000
	rate := -1934.1362891 + 2*0.0020754*t + 3*t2/467441 - 4*t3/60616000
	return angle.Normalize(longitude), rate / timescale.DaysPerCentury
}

// GeneralPrecession returns the accumulated general precession in longitude
// since J2000, in degrees (Lieske 1977).
func GeneralPrecession(jd float64) float64 {
	t := timescale.Centuries(jd)
	arcsec := 5029.0966*t + 1.11113*t*t - 0.000006*t*t*t
	return arcsec / 3600
}

// GeneralPrecessionRate is the derivative of GeneralPrecession in degrees per day.
func GeneralPrecessionRate(jd float64) float64 {
	t := timescale.Centuries(jd)
	arcsec := 5029.0966 + 2*1.11113*t - 3*0.000006*t*t
	return arcsec / 3600 / timescale.DaysPerCentury
}
