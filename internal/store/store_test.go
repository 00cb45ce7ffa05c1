// ./internal/store/store_test.go
package store

/*
Package store provides tests for the SQLite ayanamsa cache.

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
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mshafiee/jyotish/ayanamsa"
)

func openTemp(t *testing.T) (*DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.db")
	db, err := Open(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, path
}

func TestGetPut(t *testing.T) {
	db, _ := openTemp(t)
	ctx := context.Background()

	_, ok := db.Get(ctx, ayanamsa.Lahiri, 2451545.0)
	assert.False(t, ok)

	db.Put(ctx, ayanamsa.Lahiri, 2451545.0, 23.85709)
	v, ok := db.Get(ctx, ayanamsa.Lahiri, 2451545.0)
	require.True(t, ok)
	assert.Equal(t, 23.85709, v)

	_, ok = db.Get(ctx, "raman", 2451545.0)
	assert.False(t, ok, "keyed by standard")

	db.Put(ctx, ayanamsa.Lahiri, 2451545.0, 23.9)
	v, _ = db.Get(ctx, ayanamsa.Lahiri, 2451545.0)
	assert.Equal(t, 23.9, v, "upsert replaces")
}

func TestSurvivesReopen(t *testing.T) {
	db, path := openTemp(t)
	db.Put(context.Background(), ayanamsa.Lahiri, 2460000.5, 24.17)
	require.NoError(t, db.Close())

	again, err := Open(path, nil)
	require.NoError(t, err)
	defer again.Close()
	v, ok := again.Get(context.Background(), ayanamsa.Lahiri, 2460000.5)
	require.True(t, ok)
	assert.Equal(t, 24.17, v)
}

func TestStatsAndPrune(t *testing.T) {
	db, _ := openTemp(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		db.Put(ctx, ayanamsa.Lahiri, 2451545.0+float64(i), 23.85+float64(i)*0.0001)
	}
	db.Put(ctx, "raman", 2451545.0, 22.4)

	st, err := db.Stats(ctx)
	require.NoError(t, err)
	require.Len(t, st, 2)
	assert.Equal(t, ayanamsa.Lahiri, st[0].Standard)
	assert.Equal(t, 5, st[0].Entries)
	assert.Equal(t, 2451545.0, st[0].MinJD)
	assert.Equal(t, 2451549.0, st[0].MaxJD)

	n, err := db.Prune(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = db.Prune(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 6, n)
}

func TestBacksExternalProvider(t *testing.T) {
	db, _ := openTemp(t)
	calls := 0
	p := ayanamsa.NewExternal(ayanamsa.SourceFunc(
		func(context.Context, float64, ayanamsa.Standard) (float64, error) {
			calls++
			return 23.5, nil
		}))
	p.Cache = db

	for i := 0; i < 3; i++ {
		v, err := p.Ayanamsa(context.Background(), 2440000.5)
		require.NoError(t, err)
		assert.Equal(t, 23.5, v)
	}
	assert.Equal(t, 1, calls)
}

func TestCloseNil(t *testing.T) {
	var db *DB
	assert.NoError(t, db.Close())
}
