// ./ayanamsa/ayanamsa_test.go
package ayanamsa

/*
Package ayanamsa provides tests for the ayanamsa providers.

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
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearExactAtReference(t *testing.T) {
	l := DefaultLinear()
	v, err := l.Ayanamsa(context.Background(), LahiriEpochJD)
	require.NoError(t, err)
	assert.Equal(t, LahiriEpochValue, v)
	assert.Equal(t, Approximate, l.Mode())
}

func TestLinearNearJ2000(t *testing.T) {
	v := DefaultLinear().At(2451545.0)
	assert.InDelta(t, 23.857, v, 0.01)

	// One Julian year of precession.
	diff := DefaultLinear().At(2451545.0+365.25) - v
	assert.InDelta(t, RateArcsecPerYear/3600, diff, 1e-12)
}

func TestParseMode(t *testing.T) {
	m, ok := ParseMode("Approximate")
	assert.True(t, ok)
	assert.Equal(t, Approximate, m)
	m, ok = ParseMode("precise")
	assert.True(t, ok)
	assert.Equal(t, Precise, m)
	_, ok = ParseMode("fagan")
	assert.False(t, ok)
	assert.Equal(t, "approximate", Approximate.String())
}

func TestExternalDelegatesAndCaches(t *testing.T) {
	var calls atomic.Int32
	src := SourceFunc(func(_ context.Context, jd float64, std Standard) (float64, error) {
		calls.Add(1)
		assert.Equal(t, Lahiri, std)
		return 23.85, nil
	})
	p := NewExternal(src)

	for i := 0; i < 3; i++ {
		v, err := p.Ayanamsa(context.Background(), 2451545.0)
		require.NoError(t, err)
		assert.Equal(t, 23.85, v)
	}
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, Precise, p.Mode())
}

func TestExternalWrapsFailure(t *testing.T) {
	boom := errors.New("file missing")
	p := NewExternal(SourceFunc(func(context.Context, float64, Standard) (float64, error) {
		return 0, boom
	}))
	_, err := p.Ayanamsa(context.Background(), 2451545.0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "file missing")
}

func TestExternalTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	p := &External{
		Source: SourceFunc(func(ctx context.Context, _ float64, _ Standard) (float64, error) {
			<-release // ignores ctx on purpose
			return 0, nil
		}),
		Timeout: 20 * time.Millisecond,
	}
	start := time.Now()
	_, err := p.Ayanamsa(context.Background(), 2451545.0)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Less(t, time.Since(start), time.Second)
}

func TestExternalWithoutSource(t *testing.T) {
	_, err := (&External{}).Ayanamsa(context.Background(), 2451545.0)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestMemoryCacheBound(t *testing.T) {
	c := NewMemoryCache(2)
	ctx := context.Background()
	c.Put(ctx, Lahiri, 1, 1)
	c.Put(ctx, Lahiri, 2, 2)
	assert.Equal(t, 2, c.Len())
	c.Put(ctx, Lahiri, 3, 3)
	assert.Equal(t, 1, c.Len())
	v, ok := c.Get(ctx, Lahiri, 3)
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)
}
