// ./internal/calibration/calibration.go

// Package calibration measures how far the approximate ayanamsa model drifts
// from a precise source over a set of reference charts.
package calibration

/*
Package calibration provides the approximate-versus-precise ayanamsa comparison.

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
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/mshafiee/jyotish/ayanamsa"
	"github.com/mshafiee/jyotish/timescale"
)

//go:embed reference.toml
var builtin []byte

// DefaultTolerance is the deviation in degrees accepted when a set does not
// name one.
const DefaultTolerance = 0.01

// Reference is one reference chart.
type Reference struct {
	Name      string  `toml:"name"`
	Date      string  `toml:"date"`
	Time      string  `toml:"time"`
	UTCOffset string  `toml:"utc_offset"`
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
	Lahiri    float64 `toml:"lahiri,omitempty"` // expected Lahiri value, 0 when unknown
}

// Instant parses the civil fields.
func (r Reference) Instant() (timescale.Instant, error) {
	in, err := timescale.Parse(r.Date, r.Time, r.UTCOffset)
	if err != nil {
		return in, fmt.Errorf("chart %q: %w", r.Name, err)
	}
	return in, nil
}

// Set is a named collection of reference charts.
type Set struct {
	Tolerance float64     `toml:"tolerance"`
	Charts    []Reference `toml:"chart"`
}

// Parse decodes a TOML reference set and validates every chart.
func Parse(data []byte) (*Set, error) {
	var s Set
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing reference set: %w", err)
	}
	if len(s.Charts) == 0 {
		return nil, errors.New("reference set has no charts")
	}
	if s.Tolerance <= 0 {
		s.Tolerance = DefaultTolerance
	}
	for _, c := range s.Charts {
		if _, err := c.Instant(); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

// Load reads a reference set from path.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference set: %w", err)
	}
	return Parse(data)
}

// Builtin returns the reference set shipped with the binary.
func Builtin() *Set {
	s, err := Parse(builtin)
	if err != nil {
		panic(err)
	}
	return s
}

// Row is the comparison for one chart.
type Row struct {
	Name        string  `toml:"name"`
	JulianDay   float64 `toml:"jd"`
	Precise     float64 `toml:"precise"`
	Approximate float64 `toml:"approximate"`
	Deviation   float64 `toml:"deviation"`              // approximate - precise
	Reference   float64 `toml:"reference,omitempty"`    // expected Lahiri value
	SourceError float64 `toml:"source_error,omitempty"` // precise - reference
}

// Report summarizes a calibration run.
type Report struct {
	Tolerance        float64 `toml:"tolerance"`
	MaxDeviation     float64 `toml:"max_deviation"`
	MeanAbsDeviation float64 `toml:"mean_abs_deviation"`
	Worst            string  `toml:"worst"`
	Pass             bool    `toml:"pass"`
	Rows             []Row   `toml:"row"`
}

// Run evaluates both providers for every chart in s.
func Run(ctx context.Context, s *Set, precise, approx ayanamsa.Provider) (*Report, error) {
	if precise == nil || approx == nil {
		return nil, errors.New("calibration needs both a precise and an approximate provider")
	}
	rep := &Report{Tolerance: s.Tolerance}
	var sum float64
	for _, c := range s.Charts {
		in, err := c.Instant()
		if err != nil {
			return nil, err
		}
		jd := in.JulianDay()
		p, err := precise.Ayanamsa(ctx, jd)
		if err != nil {
			return nil, fmt.Errorf("chart %q: precise: %w", c.Name, err)
		}
		a, err := approx.Ayanamsa(ctx, jd)
		if err != nil {
			return nil, fmt.Errorf("chart %q: approximate: %w", c.Name, err)
		}

		row := Row{Name: c.Name, JulianDay: jd, Precise: p, Approximate: a, Deviation: a - p}
		if c.Lahiri != 0 {
			row.Reference = c.Lahiri
			row.SourceError = p - c.Lahiri
		}
		if d := math.Abs(row.Deviation); d >= rep.MaxDeviation {
			rep.MaxDeviation = d
			rep.Worst = c.Name
		}
		sum += math.Abs(row.Deviation)
		rep.Rows = append(rep.Rows, row)
	}
	rep.MeanAbsDeviation = sum / float64(len(rep.Rows))
	rep.Pass = rep.MaxDeviation <= rep.Tolerance
	return rep, nil
}

// Encode writes r as TOML.
func (r *Report) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(r)
}

// Fit returns the linear model that best matches the precise values of r in
// the least-squares sense, anchored at the Lahiri epoch.
func Fit(r *Report) (ayanamsa.Linear, error) {
	n := float64(len(r.Rows))
	if n < 2 {
		return ayanamsa.Linear{}, errors.New("fit needs at least two rows")
	}
	var sx, sy, sxx, sxy float64
	for _, row := range r.Rows {
		x := row.JulianDay - ayanamsa.LahiriEpochJD
		sx += x
		sy += row.Precise
		sxx += x * x
		sxy += x * row.Precise
	}
	den := n*sxx - sx*sx
	if den == 0 {
		return ayanamsa.Linear{}, errors.New("fit needs distinct dates")
	}
	slope := (n*sxy - sx*sy) / den
	return ayanamsa.Linear{
		RefJD:      ayanamsa.LahiriEpochJD,
		RefValue:   (sy - slope*sx) / n,
		RatePerDay: slope,
	}, nil
}
