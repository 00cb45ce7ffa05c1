// ./engine_test.go
package jyotish

/*
Package jyotish provides tests for the chart engine.

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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mshafiee/jyotish/angle"
	"github.com/mshafiee/jyotish/ayanamsa"
	"github.com/mshafiee/jyotish/timescale"
)

type fixedSource map[Body]Position

func (f fixedSource) Position(_ context.Context, _ float64, b Body) (Position, error) {
	p, ok := f[b]
	if !ok {
		return Position{}, errors.New("no such body")
	}
	return p, nil
}

type failingSource struct{ err error }

func (f failingSource) Position(context.Context, float64, Body) (Position, error) {
	return Position{}, f.err
}

var (
	delhi     = Location{Latitude: 28.6139, Longitude: 77.2090}
	noonDelhi = timescale.Instant{Year: 2000, Month: 1, Day: 1, Hour: 12, OffsetMinutes: 330}
	tropical  = fixedSource{
		Sun:     {Longitude: 280.2, Speed: 1.019},
		Moon:    {Longitude: 217.3, Speed: 12.1},
		Mars:    {Longitude: 327.9, Speed: 0.77},
		Mercury: {Longitude: 271.1, Speed: 1.55},
		Jupiter: {Longitude: 25.2, Speed: -0.01},
		Venus:   {Longitude: 241.5, Speed: 1.21},
		Saturn:  {Longitude: 40.4, Speed: -0.05},
	}
	brokenPrecise = &ayanamsa.External{Source: ayanamsa.SourceFunc(
		func(context.Context, float64, ayanamsa.Standard) (float64, error) {
			return 0, errors.New("ephemeris file missing")
		})}
)

func TestComputeChartApproximate(t *testing.T) {
	e := New(tropical, nil)
	c, err := e.ComputeChart(context.Background(), noonDelhi, delhi, ayanamsa.Approximate)
	require.NoError(t, err)

	assert.Equal(t, ayanamsa.Approximate, c.Mode)
	assert.False(t, c.Degraded)
	assert.InDelta(t, 2451544.7708333, c.JulianDay, 1e-6)
	assert.InDelta(t, 23.857, c.Ayanamsa, 0.01)
	assert.Equal(t, 23.4392911, c.Obliquity)
	require.Len(t, c.Bodies, 9)

	sun, ok := c.Body(Sun)
	require.True(t, ok)
	assert.InDelta(t, 280.2-c.Ayanamsa, sun.Longitude, 1e-9)
	assert.Equal(t, 8, sun.Sign) // Sagittarius
	assert.Equal(t, "Jupiter", sun.Lord)
	assert.Equal(t, Malefic, sun.Nature)

	jup, _ := c.Body(Jupiter)
	assert.True(t, jup.Retrograde)
}

func TestNodesAreOpposite(t *testing.T) {
	c, err := New(tropical, nil).ComputeChart(context.Background(), noonDelhi, delhi, ayanamsa.Approximate)
	require.NoError(t, err)
	rahu, _ := c.Body(Rahu)
	ketu, _ := c.Body(Ketu)
	assert.InDelta(t, 180, angle.Distance(rahu.Longitude, ketu.Longitude), 1e-9)
	assert.Equal(t, rahu.Speed, ketu.Speed)
	assert.True(t, rahu.Retrograde)
	assert.True(t, ketu.Retrograde)
	assert.Equal(t, (rahu.Sign+6)%12, ketu.Sign)
}

func TestHousesFollowAscendant(t *testing.T) {
	c, err := New(tropical, nil).ComputeChart(context.Background(), noonDelhi, delhi, ayanamsa.Approximate)
	require.NoError(t, err)

	assert.Equal(t, c.Ascendant.Sign, c.Houses[0].Sign)
	total := 0
	for i, h := range c.Houses {
		assert.Equal(t, i+1, h.Number)
		for _, b := range h.Occupants {
			p, _ := c.Body(b)
			assert.Equal(t, i+1, p.House)
			total++
		}
	}
	assert.Equal(t, 9, total)
}

func TestVargasIncludeAscendant(t *testing.T) {
	c, err := New(tropical, nil).ComputeChart(context.Background(), noonDelhi, delhi, ayanamsa.Approximate)
	require.NoError(t, err)

	var ns []int
	for _, v := range c.Vargas {
		ns = append(ns, v.N)
		assert.Len(t, v.Positions, 9)
	}
	assert.Equal(t, []int{1, 9, 10, 12, 60}, ns)

	d1, ok := c.Varga(1)
	require.True(t, ok)
	assert.InDelta(t, c.Ascendant.Longitude, d1.Ascendant.Longitude, 1e-9)
	d9, _ := c.Varga(9)
	moon, _ := c.Body(Moon)
	assert.Equal(t, moon.Sign, d1.Positions[Moon].Sign)
	assert.GreaterOrEqual(t, d9.Positions[Moon].Sign, 0)
}

func TestDashaFromMoon(t *testing.T) {
	c, err := New(tropical, nil).ComputeChart(context.Background(), noonDelhi, delhi, ayanamsa.Approximate)
	require.NoError(t, err)
	require.NotEmpty(t, c.Dasha)
	assert.True(t, c.Dasha[0].Partial)
	assert.True(t, c.Dasha[0].Start.Equal(noonDelhi.Time()))
	assert.Equal(t, c.Nakshatra.Nakshatra.Lord, c.Dasha[0].Lord)
	for i := 1; i < len(c.Dasha); i++ {
		assert.True(t, c.Dasha[i-1].End.Equal(c.Dasha[i].Start))
	}
	assert.GreaterOrEqual(t, c.Dasha.Span(), 120.0)
}

func TestPreciseFallbackIsExplicit(t *testing.T) {
	logger, hook := test.NewNullLogger()
	e := New(tropical, brokenPrecise)
	e.Logger = logger

	c, err := e.ComputeChart(context.Background(), noonDelhi, delhi, ayanamsa.Precise)
	require.NoError(t, err)
	assert.True(t, c.Degraded)
	assert.Equal(t, ayanamsa.Approximate, c.Mode)

	require.NotEmpty(t, hook.Entries)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestPreciseWithoutFallbackFails(t *testing.T) {
	e := New(tropical, brokenPrecise)
	e.Fallback = false
	c, err := e.ComputeChart(context.Background(), noonDelhi, delhi, ayanamsa.Precise)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrEphemerisUnavailable)
	assert.ErrorIs(t, err, ayanamsa.ErrUnavailable)
	assert.True(t, IsRetryable(err))
}

func TestPreciseUsesPolynomialObliquity(t *testing.T) {
	precise := ayanamsa.NewExternal(ayanamsa.SourceFunc(
		func(context.Context, float64, ayanamsa.Standard) (float64, error) { return 23.8571, nil }))
	c, err := New(tropical, precise).ComputeChart(context.Background(), noonDelhi, delhi, ayanamsa.Precise)
	require.NoError(t, err)
	assert.False(t, c.Degraded)
	assert.Equal(t, 23.8571, c.Ayanamsa)
	assert.NotEqual(t, 23.4392911, c.Obliquity)
	assert.InDelta(t, 23.4392911, c.Obliquity, 1e-5)
}

func TestInvalidInput(t *testing.T) {
	e := New(tropical, nil)
	ctx := context.Background()

	bad := noonDelhi
	bad.Month = 13
	_, err := e.ComputeChart(ctx, bad, delhi, ayanamsa.Approximate)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.True(t, IsClientError(err))

	for _, loc := range []Location{
		{Latitude: 91, Longitude: 0},
		{Latitude: -90.5, Longitude: 0},
		{Latitude: math.NaN(), Longitude: 0},
		{Latitude: 10, Longitude: 181},
	} {
		_, err := e.ComputeChart(ctx, noonDelhi, loc, ayanamsa.Approximate)
		var ie *InputError
		require.ErrorAs(t, err, &ie, "%+v", loc)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	_, err = e.ComputeChart(ctx, noonDelhi, delhi, ayanamsa.Mode(7))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPolarLatitude(t *testing.T) {
	for _, lat := range []float64{89.95, 90, -90, -89.9} {
		c, err := New(tropical, nil).ComputeChart(context.Background(), noonDelhi,
			Location{Latitude: lat, Longitude: 10}, ayanamsa.Approximate)
		assert.Nil(t, c, "lat %v", lat)
		assert.ErrorIs(t, err, ErrPolarLatitude, "lat %v", lat)
		assert.NotErrorIs(t, err, ErrInvalidInput, "lat %v", lat)
		assert.True(t, IsClientError(err))
		assert.False(t, IsRetryable(err))
	}
}

func TestBodySourceFailureIsAllOrNothing(t *testing.T) {
	c, err := New(failingSource{errors.New("disk")}, nil).
		ComputeChart(context.Background(), noonDelhi, delhi, ayanamsa.Approximate)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrEphemerisUnavailable)

	nan := fixedSource{}
	for b, p := range tropical {
		nan[b] = p
	}
	nan[Mars] = Position{Longitude: math.NaN()}
	c, err = New(nan, nil).ComputeChart(context.Background(), noonDelhi, delhi, ayanamsa.Approximate)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrComputationInvariant)
}

func TestChartJSON(t *testing.T) {
	c, err := New(tropical, nil).ComputeChart(context.Background(), noonDelhi, delhi, ayanamsa.Approximate)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(c))
	assert.Contains(t, buf.String(), `"mode":"approximate"`)
	assert.Contains(t, buf.String(), `"body":"Ketu"`)
	assert.Contains(t, buf.String(), `"Moon":{`)
}

func TestBody(t *testing.T) {
	b, err := ParseBody("rahu")
	require.NoError(t, err)
	assert.Equal(t, Rahu, b)
	_, err = ParseBody("Pluto")
	assert.Error(t, err)

	from, ok := Ketu.DerivedFrom()
	assert.True(t, ok)
	assert.Equal(t, Rahu, from)
	_, ok = Sun.DerivedFrom()
	assert.False(t, ok)

	assert.Equal(t, Benefic, Jupiter.Nature())
	assert.Equal(t, Malefic, Saturn.Nature())
	assert.Equal(t, "Body(12)", Body(12).String())
}
