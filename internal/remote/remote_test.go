// ./internal/remote/remote_test.go
package remote

/*
Package remote provides tests for the HTTP ayanamsa source.

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
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mshafiee/jyotish/ayanamsa"
)

func fast() Option {
	return WithRetries(2, time.Millisecond, 5*time.Millisecond)
}

func TestAyanamsa(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/base/api/ayanamsa", r.URL.Path)
		assert.Equal(t, "2451545", r.URL.Query().Get("jd"))
		assert.Equal(t, "lahiri", r.URL.Query().Get("standard"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jd":2451545,"standard":"lahiri","ayanamsa":23.85709}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL+"/base/", fast())
	require.NoError(t, err)
	v, err := c.Ayanamsa(context.Background(), 2451545, ayanamsa.Lahiri)
	require.NoError(t, err)
	assert.Equal(t, 23.85709, v)
}

func TestRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, `{"error":"busy"}`, http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"ayanamsa":24.1}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, fast())
	require.NoError(t, err)
	v, err := c.Ayanamsa(context.Background(), 2460000.5, ayanamsa.Lahiri)
	require.NoError(t, err)
	assert.Equal(t, 24.1, v)
	assert.EqualValues(t, 2, calls.Load())
}

func TestGivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, err := New(srv.URL, fast())
	require.NoError(t, err)
	_, err = c.Ayanamsa(context.Background(), 2451545, ayanamsa.Lahiri)
	assert.Error(t, err)
	assert.EqualValues(t, 3, calls.Load(), "one try plus two retries")
}

func TestClientErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid input","details":"unknown sidereal standard: \"raman\""}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, fast())
	require.NoError(t, err)
	_, err = c.Ayanamsa(context.Background(), 2451545, "raman")
	assert.ErrorIs(t, err, ayanamsa.ErrUnknownStandard)
	assert.EqualValues(t, 1, calls.Load())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   float64
		ok     bool
	}{
		{"value", 200, `{"ayanamsa":23.5}`, 23.5, true},
		{"missing field", 200, `{"jd":1}`, 0, false},
		{"string value", 200, `{"ayanamsa":"23.5"}`, 0, false},
		{"not json", 200, `<html>`, 0, false},
		{"error status", 503, `{"error":"ephemeris unavailable"}`, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parse(tt.status, []byte(tt.body))
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}

	_, err := parse(503, []byte(`{"error":"ephemeris unavailable"}`))
	assert.ErrorIs(t, err, ErrBadResponse)
	assert.Contains(t, err.Error(), "ephemeris unavailable")
}

func TestBacksExternalProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := New(srv.URL, fast())
	require.NoError(t, err)
	p := ayanamsa.NewExternal(c)
	_, err = p.Ayanamsa(context.Background(), 2451545)
	assert.ErrorIs(t, err, ayanamsa.ErrUnavailable)
}

func TestNewRejectsBadURL(t *testing.T) {
	_, err := New("ftp://example.org")
	assert.Error(t, err)
	_, err = New("://nope")
	assert.Error(t, err)
}
