// ./angle/angle_test.go
package angle

/*
Package angle provides tests for longitude arithmetic.

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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"in range", 123.25, 123.25},
		{"exact 360", 360, 0},
		{"multiple of 360", 1080, 0},
		{"negative", -30, 330},
		{"large negative", -725, 355},
		{"large positive", 3610.5, 10.5},
		{"tiny negative", -1e-15, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, 360.0)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for x := -5000.0; x <= 5000.0; x += 17.37 {
		once := Normalize(x)
		assert.Equal(t, once, Normalize(once), "x=%v", x)
		assert.True(t, once >= 0 && once < 360, "x=%v gave %v", x, once)
	}
}

func TestSign(t *testing.T) {
	assert.Equal(t, 0, Sign(0))
	assert.Equal(t, 0, Sign(29.9999))
	assert.Equal(t, 1, Sign(30))
	assert.Equal(t, 11, Sign(359.99))
	assert.Equal(t, 11, Sign(-0.5))
	assert.Equal(t, 8, Sign(256.3+720))
}

func TestSplit(t *testing.T) {
	d := Split(135.5 + 1.0/120) // Leo 15° 30' 30"
	assert.Equal(t, 4, d.Sign)
	assert.Equal(t, 15, d.Degrees)
	assert.Equal(t, 30, d.Minutes)
	assert.InDelta(t, 30, d.Seconds, 1)
	assert.Equal(t, "Leo 15° 30'", Format(135.5+1.0/120))
}

func TestSignTables(t *testing.T) {
	assert.Equal(t, "Aries", SignName(0))
	assert.Equal(t, "Pisces", SignName(-1))
	assert.Equal(t, "Saturn", SignLord(10))
	assert.Equal(t, Fixed, Modality(7))
	assert.True(t, IsOdd(0))
	assert.False(t, IsOdd(1))
}

func TestRadians(t *testing.T) {
	assert.InDelta(t, math.Pi, Deg2Rad(180), 1e-15)
	assert.InDelta(t, 90.0, Rad2Deg(math.Pi/2), 1e-12)
	assert.InDelta(t, 20.0, Distance(350, 10), 1e-12)
}
