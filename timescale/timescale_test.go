// ./timescale/timescale_test.go
package timescale

/*
Package timescale provides tests for the Julian day converter.

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
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJulianDayKnownEpochs(t *testing.T) {
	tests := []struct {
		name string
		inst Instant
		want float64
	}{
		{"J2000", Instant{Year: 2000, Month: 1, Day: 1, Hour: 12}, 2451545.0},
		{"Sputnik", Instant{Year: 1957, Month: 10, Day: 4, Hour: 19, Minute: 26, Second: 24}, 2436116.31},
		{"Lahiri epoch", Instant{Year: 1956, Month: 3, Day: 21}, 2435553.5},
		{"1 Jan 1600", Instant{Year: 1600, Month: 1, Day: 1}, 2305447.5},
		{"Delhi noon 2000", Instant{Year: 2000, Month: 1, Day: 1, Hour: 12, OffsetMinutes: 330}, 2451544.7708333},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.inst.JulianDay(), 1e-5)
		})
	}
}

func TestJulianDayMonotonic(t *testing.T) {
	prev := JulianDay(1899, 12, 31, 23, 59, 0, 0)
	for y := 1900; y <= 1904; y++ {
		for m := 1; m <= 12; m++ {
			for d := 1; d <= DaysIn(y, m); d++ {
				jd := JulianDay(y, m, d, 0, 0, 0, 0)
				require.Greater(t, jd, prev, "%d-%02d-%02d", y, m, d)
				assert.InDelta(t, 1.0/1440, jd-prev, 1e-6, "midnight step %d-%02d-%02d", y, m, d)
				prev = JulianDay(y, m, d, 23, 59, 0, 0)
			}
		}
	}
}

func TestFromJulianDayRoundTrip(t *testing.T) {
	cases := []Instant{
		{Year: 2000, Month: 1, Day: 1, Hour: 12, OffsetMinutes: 330},
		{Year: 1984, Month: 2, Day: 29, Hour: 23, Minute: 59, OffsetMinutes: -480},
		{Year: -500, Month: 3, Day: 1, Hour: 6, Minute: 30},
		{Year: 1, Month: 1, Day: 1},
		{Year: 3000, Month: 12, Day: 31, Hour: 23, Minute: 1, OffsetMinutes: 60},
	}
	for _, in := range cases {
		out := FromJulianDay(in.JulianDay(), in.OffsetMinutes)
		assert.Equal(t, in, out)
	}
}

func TestValidate(t *testing.T) {
	bad := []Instant{
		{Year: 2001, Month: 2, Day: 29},
		{Year: 2000, Month: 13, Day: 1},
		{Year: 2000, Month: 1, Day: 1, Hour: 24},
		{Year: 2000, Month: 1, Day: 1, Second: 60},
		{Year: 2000, Month: 1, Day: 1, OffsetMinutes: 15 * 60},
		{Year: 20000, Month: 1, Day: 1},
	}
	for _, in := range bad {
		err := in.Validate()
		require.Error(t, err, "%+v", in)
		assert.True(t, errors.Is(err, ErrInvalidInstant))
		var fe *FieldError
		assert.True(t, errors.As(err, &fe))
	}
	assert.NoError(t, Instant{Year: 2000, Month: 2, Day: 29}.Validate())
}

func TestParse(t *testing.T) {
	in, err := Parse("2000-01-01", "12:00:00", "+05:30")
	require.NoError(t, err)
	assert.Equal(t, Instant{Year: 2000, Month: 1, Day: 1, Hour: 12, OffsetMinutes: 330}, in)

	in, err = Parse("1990-07-15", "06:45", "-0800")
	require.NoError(t, err)
	assert.Equal(t, -480, in.OffsetMinutes)

	_, err = Parse("2000/01/01", "12:00", "")
	assert.ErrorIs(t, err, ErrInvalidInstant)
	_, err = Parse("2000-01-01", "noon", "")
	assert.ErrorIs(t, err, ErrInvalidInstant)
	_, err = Parse("2000-01-01", "12:00", "+15:00")
	assert.ErrorIs(t, err, ErrInvalidInstant)
}

func TestInstantTime(t *testing.T) {
	in := Instant{Year: 2000, Month: 1, Day: 1, Hour: 12, OffsetMinutes: 330}
	tm := in.Time()
	assert.Equal(t, time.Date(2000, 1, 1, 6, 30, 0, 0, time.UTC), tm.UTC())
	assert.Equal(t, "2000-01-01T12:00:00+05:30", in.String())
	assert.Equal(t, in, FromTime(tm))
}

func TestDeltaT(t *testing.T) {
	assert.InDelta(t, 63.8, DeltaT(J2000), 0.5)
	assert.InDelta(t, 29.1, DeltaT(JulianDay(1950, 1, 1, 0, 0, 0, 0)), 0.5)
	assert.Greater(t, DeltaT(JulianDay(-500, 1, 1, 0, 0, 0, 0)), 10000.0)
	assert.InDelta(t, J2000+63.86/86400, TerrestrialTime(J2000), 1e-5)
}

func TestWithZone(t *testing.T) {
	tests := []struct {
		zone string
		in   Instant
		want int
	}{
		{"Asia/Kolkata", Instant{Year: 2000, Month: 1, Day: 1, Hour: 12}, 330},
		{"Europe/London", Instant{Year: 2012, Month: 6, Day: 30, Hour: 18}, 60},
		{"Europe/London", Instant{Year: 2012, Month: 12, Day: 30, Hour: 18}, 0},
		{"America/New_York", Instant{Year: 2024, Month: 7, Day: 4, Hour: 9}, -240},
		{"UTC", Instant{Year: 1956, Month: 3, Day: 21}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			got, err := tt.in.WithZone(tt.zone)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.OffsetMinutes)
			assert.Equal(t, tt.in.Hour, got.Hour, "civil fields are kept")
		})
	}

	_, err := Instant{Year: 2000, Month: 1, Day: 1}.WithZone("Mars/Olympus_Mons")
	assert.ErrorIs(t, err, ErrInvalidInstant)
}
