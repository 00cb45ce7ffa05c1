// ./cmd/jyotish/main_test.go
package main

/*
Package main provides end-to-end tests of the commands.

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
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/mshafiee/jyotish"
	"github.com/mshafiee/jyotish/dasha"
	"github.com/mshafiee/jyotish/ephemeris"
	"github.com/mshafiee/jyotish/internal/config"
	"github.com/mshafiee/jyotish/internal/logging"
)

// resetFlags restores every flag of c and its children to its default.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd)
	t.Cleanup(func() { logging.Log.SetOutput(os.Stderr) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

var delhi = []string{"--date", "2000-01-01", "--time", "12:00", "--offset", "+05:30", "--lat", "28.6139", "--lon", "77.2090"}

func TestChartJSON(t *testing.T) {
	out, err := run(t, append([]string{"chart", "--json"}, delhi...)...)
	require.NoError(t, err)

	assert.Equal(t, "precise", gjson.Get(out, "mode").String())
	assert.False(t, gjson.Get(out, "degraded").Bool())
	assert.InDelta(t, 23.857, gjson.Get(out, "ayanamsa").Float(), 0.001)
	assert.InDelta(t, 2451544.7708333, gjson.Get(out, "julianDay").Float(), 1e-6)
	assert.Len(t, gjson.Get(out, "bodies").Array(), 9)
	assert.Equal(t, int64(8), gjson.Get(out, `bodies.#(body=="Sun").sign`).Int())
}

func TestChartText(t *testing.T) {
	out, err := run(t, append([]string{"chart", "--mode", "approximate", "--vargas"}, delhi...)...)
	require.NoError(t, err)

	for _, want := range []string{"Julian day", "approximate", "Ascendant", "Ketu", "Occupants", "D9", "D60"} {
		assert.Contains(t, out, want)
	}
}

func TestChartTimezone(t *testing.T) {
	out, err := run(t, "chart", "--json", "--date", "2000-01-01", "--time", "12:00",
		"--tz", "Asia/Kolkata", "--lat", "28.6139", "--lon", "77.2090")
	require.NoError(t, err)
	assert.Equal(t, int64(330), gjson.Get(out, "instant.utcOffsetMinutes").Int())
}

func TestChartErrors(t *testing.T) {
	_, err := run(t, "chart", "--date", "2000-02-30", "--lat", "1", "--lon", "1")
	assert.ErrorIs(t, err, jyotish.ErrInvalidInput)

	_, err = run(t, "chart", "--date", "2000-01-01", "--lat", "89.95", "--lon", "0")
	assert.ErrorIs(t, err, jyotish.ErrPolarLatitude)

	_, err = run(t, "chart", "--lat", "1", "--lon", "1")
	assert.Error(t, err, "date is required")

	_, err = run(t, append([]string{"chart", "--mode", "sideways"}, delhi...)...)
	assert.Error(t, err)
}

func TestDashaJSON(t *testing.T) {
	out, err := run(t, append([]string{"dasha", "--json", "--at", "2030-06-01"}, delhi...)...)
	require.NoError(t, err)

	tl := gjson.Get(out, "timeline").Array()
	require.NotEmpty(t, tl)
	assert.True(t, tl[0].Get("partial").Bool())
	assert.Equal(t, gjson.Get(out, "nakshatra.nakshatra.lord").String(), tl[0].Get("lord").String())
	assert.True(t, gjson.Get(out, "current.lord").Exists())
}

func TestAyanamsaCommand(t *testing.T) {
	out, err := run(t, "ayanamsa", "--jd", "2451545", "--json")
	require.NoError(t, err)
	assert.InDelta(t, ephemeris.Lahiri(2451545), gjson.Get(out, "precise").Float(), 1e-12)
	assert.InDelta(t, 0, gjson.Get(out, "difference").Float(), 0.001)
	assert.Equal(t, "lahiri", gjson.Get(out, "standard").String())

	_, err = run(t, "ayanamsa")
	assert.Error(t, err, "jd or date required")
}

func TestCalibrate(t *testing.T) {
	out, err := run(t, "calibrate", "--fit")
	require.NoError(t, err)
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "kolkata-1901")
	assert.Contains(t, out, "fitted model")

	set := filepath.Join(t.TempDir(), "strict.toml")
	require.NoError(t, os.WriteFile(set, []byte(`
tolerance = 0.0000001
[[chart]]
name = "far"
date = "1901-01-01"
time = "00:00"
`), 0o644))
	out, err = run(t, "calibrate", "--set", set, "--toml")
	assert.ErrorContains(t, err, "calibration failed")
	assert.Contains(t, out, "[[row]]")
}

func TestCacheCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "ayanamsa.db")
	_, err := run(t, append([]string{"chart", "--json", "--cache", db}, delhi...)...)
	require.NoError(t, err)

	out, err := run(t, "cache", "stats", "--cache", db)
	require.NoError(t, err)
	assert.Contains(t, out, "lahiri")
	assert.Contains(t, out, "2451544.7708")

	out, err = run(t, "cache", "prune", "--cache", db, "--older-than=-1h")
	require.NoError(t, err)
	assert.Contains(t, out, "pruned 1 entries")

	_, err = run(t, "cache", "stats")
	assert.ErrorContains(t, err, "no cache file")
}

func TestEphemNeedsFile(t *testing.T) {
	_, err := run(t, "ephem", "info")
	assert.ErrorContains(t, err, "no ephemeris file")

	_, err = run(t, "ephem", "masses", "--ephemeris", filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}

func TestConfigFileAndEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), "jyotish.yaml")
	require.NoError(t, os.WriteFile(file, []byte("ayanamsa:\n  mode: approximate\n"), 0o644))

	out, err := run(t, append([]string{"--config", file, "chart", "--json"}, delhi...)...)
	require.NoError(t, err)
	assert.Equal(t, "approximate", gjson.Get(out, "mode").String())

	t.Setenv("JYOTISH_AYANAMSA_MODE", "approximate")
	out, err = run(t, append([]string{"chart", "--json"}, delhi...)...)
	require.NoError(t, err)
	assert.Equal(t, "approximate", gjson.Get(out, "mode").String())

	out, err = run(t, append([]string{"chart", "--json", "--mode", "precise"}, delhi...)...)
	require.NoError(t, err)
	assert.Equal(t, "precise", gjson.Get(out, "mode").String(), "flags beat env")
}

func TestApplyConfigChange(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	defer logging.Log.SetLevel(logrus.InfoLevel)

	file := filepath.Join(t.TempDir(), "jyotish.yaml")
	require.NoError(t, os.WriteFile(file, []byte("log_level: info\n"), 0o644))
	require.NoError(t, config.Setup(file))

	require.NoError(t, os.WriteFile(file, []byte("log_level: debug\n"), 0o644))
	require.NoError(t, viper.ReadInConfig())
	require.NoError(t, applyConfigChange(fsnotify.Event{Name: file, Op: fsnotify.Write}))
	assert.Equal(t, logrus.DebugLevel, logging.Log.GetLevel())

	require.NoError(t, os.WriteFile(file, []byte("log_level: loud\n"), 0o644))
	require.NoError(t, viper.ReadInConfig())
	assert.Error(t, applyConfigChange(fsnotify.Event{Name: file, Op: fsnotify.Write}))
	assert.Equal(t, logrus.DebugLevel, logging.Log.GetLevel(), "bad reloads are ignored")

	assert.NoError(t, applyConfigChange(fsnotify.Event{Name: file, Op: fsnotify.Chmod}))
}

func TestRenderTimelineMarksCurrent(t *testing.T) {
	birth := time.Date(2000, 1, 1, 6, 30, 0, 0, time.UTC)
	tl := dasha.Generate(200, birth, 120)
	var buf bytes.Buffer
	renderTimeline(&buf, tl, birth.AddDate(30, 0, 0))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "▶"))
	assert.Contains(t, out, "(balance)")
	assert.Contains(t, out, tl[0].Start.Format("2006-01-02"))
}

func TestRenderInfoAndMasses(t *testing.T) {
	var buf bytes.Buffer
	renderInfo(&buf, ephemeris.Info{Name: "DE440", Version: 440, Start: 2287184.5, End: 2688976.5, Step: 32, AU: 149597870.7, EMRAT: 81.3005682})
	renderMasses(&buf, []ephemeris.Mass{{Name: "Sun", GM: 2.959122082855911e-04, GMKm: 1.327124400419394e+11, Ratio: 1, Inverse: 1}})

	out := buf.String()
	assert.Contains(t, out, "DE440")
	assert.Contains(t, out, "2287184.5 to 2688976.5")
	assert.Contains(t, out, "149597870.70000000")
	assert.Contains(t, out, "1.327124400419394e+11")
}
