// ./timescale/julian.go

// Package timescale converts civil date and time into a continuous Julian day count.
package timescale

/*
Package timescale provides Julian day conversion for civil instants.

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
)

// J2000 is the Julian day of the J2000.0 epoch (2000-01-01 12:00 TT).
const J2000 = 2451545.0

// DaysPerCentury is the length of a Julian century in days.
const DaysPerCentury = 36525.0

// JulianDay converts a proleptic Gregorian civil date and time observed at a
// UTC offset (in minutes, east positive) to a Julian day in UT.
//
// The offset is removed as a fraction of a day after the civil day count has been
// formed, so the result is continuous across midnight and month boundaries.
func JulianDay(year, month, day, hour, minute int, second float64, offsetMinutes int) float64 {
	y, m := year, month
	if m <= 2 { // January and February count as months 13 and 14 of the prior year
		y--
		m += 12
	}
	a := math.Floor(float64(y) / 100)
	b := 2 - a + math.Floor(a/4) // Gregorian century correction

	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + b - 1524.5

	dayFraction := (float64(hour) + float64(minute)/60 + second/3600) / 24
	return jd + dayFraction - float64(offsetMinutes)/1440
}

// Centuries returns Julian centuries elapsed since J2000.0.
func Centuries(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// FromJulianDay converts a Julian day (UT) back into civil fields at the given
// UTC offset. The result is rounded to the nearest second.
func FromJulianDay(jd float64, offsetMinutes int) Instant {
	local := jd + 0.5 + float64(offsetMinutes)/1440
	secs := math.Round(local * 86400)
	jdn := math.Floor(secs / 86400)
	rem := int64(secs - jdn*86400)

	year, month, day := gregorianFromDayNumber(int64(jdn))
	return Instant{
		Year:          year,
		Month:         month,
		Day:           day,
		Hour:          int(rem / 3600),
		Minute:        int(rem % 3600 / 60),
		Second:        float64(rem % 60),
		OffsetMinutes: offsetMinutes,
	}
}

// gregorianFromDayNumber is the integer Julian day number to proleptic
// Gregorian calendar conversion.
func gregorianFromDayNumber(jdn int64) (year, month, day int) {
	a := jdn + 32044
	b := floorDiv(4*a+3, 146097)
	c := a - floorDiv(146097*b, 4)
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)

	day = int(e - floorDiv(153*m+2, 5) + 1)
	month = int(m + 3 - 12*floorDiv(m, 10))
	year = int(100*b + d - 4800 + floorDiv(m, 10))
	return year, month, day
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
