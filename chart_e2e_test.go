// ./chart_e2e_test.go
package jyotish_test

/*
Package jyotish provides end-to-end tests with the analytic ephemeris.

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mshafiee/jyotish"
	"github.com/mshafiee/jyotish/ayanamsa"
	"github.com/mshafiee/jyotish/ephemeris"
	"github.com/mshafiee/jyotish/timescale"
)

func TestDelhiChartWithAnalyticEphemeris(t *testing.T) {
	src := ephemeris.Analytic{}
	e := jyotish.New(src, ayanamsa.NewExternal(src))

	in := timescale.Instant{Year: 2000, Month: 1, Day: 1, Hour: 12, OffsetMinutes: 330}
	loc := jyotish.Location{Latitude: 28.6139, Longitude: 77.2090}

	precise, err := e.ComputeChart(context.Background(), in, loc, ayanamsa.Precise)
	require.NoError(t, err)
	assert.False(t, precise.Degraded)
	assert.InDelta(t, 23.85, precise.Ayanamsa, 0.02)

	sun, ok := precise.Body(jyotish.Sun)
	require.True(t, ok)
	assert.GreaterOrEqual(t, sun.Longitude, 255.0)
	assert.Less(t, sun.Longitude, 260.0)
	assert.Equal(t, 8, sun.Sign)

	approx, err := e.ComputeChart(context.Background(), in, loc, ayanamsa.Approximate)
	require.NoError(t, err)
	assert.InDelta(t, precise.Ayanamsa, approx.Ayanamsa, 0.01)
	assert.Equal(t, precise.Ascendant.Sign, approx.Ascendant.Sign)
	for i, p := range precise.Bodies {
		assert.Equal(t, p.Sign, approx.Bodies[i].Sign, p.Body.String())
	}
}
