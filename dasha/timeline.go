// ./dasha/timeline.go
package dasha

/*
Package dasha provides timeline generation and period lookup.

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
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultHorizon is the span covered when no horizon is requested.
const DefaultHorizon = 120.0

// MaxHorizon caps the generated span, ten full cycles.
const MaxHorizon = 1200.0

// DaysPerYear is the fixed year length used to date periods.
const DaysPerYear = 365.25

var (
	decDaysPerYear = decimal.NewFromFloat(DaysPerYear)
	decNanosPerDay = decimal.NewFromInt(int64(24 * time.Hour))
)

// Period is one ruler's span. Partial marks the birth period, which runs
// only for the unelapsed balance.
type Period struct {
	Lord    Lord      `json:"lord"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Years   float64   `json:"years"`
	Partial bool      `json:"partial"`
}

// Contains reports whether t lies in [Start, End).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Timeline is an ordered, gapless run of periods.
type Timeline []Period

// Duration converts fractional years to a duration using 365.25-day years.
func Duration(years decimal.Decimal) time.Duration {
	ns := years.Mul(decDaysPerYear).Mul(decNanosPerDay).Round(0)
	return time.Duration(ns.IntPart())
}

// Generate builds the timeline from the sidereal Moon at birth. The first
// period holds the balance; full periods follow in Order until the cumulative
// span reaches horizonYears (DefaultHorizon when not positive, MaxHorizon at
// most).
func Generate(moon float64, birth time.Time, horizonYears float64) Timeline {
	if horizonYears <= 0 || math.IsNaN(horizonYears) {
		horizonYears = DefaultHorizon
	}
	horizonYears = math.Min(horizonYears, MaxHorizon)
	horizon := decimal.NewFromFloat(horizonYears)

	lord, balance := Balance(moon)
	bal := decimal.NewFromFloat(balance)

	start := birth
	end := start.Add(Duration(bal))
	tl := Timeline{{Lord: lord, Start: start, End: end, Years: balance, Partial: true}}

	total := bal
	for total.LessThan(horizon) {
		lord = Next(lord)
		y := Years(lord)
		start = end
		end = start.Add(Duration(decimal.NewFromInt(int64(y))))
		tl = append(tl, Period{Lord: lord, Start: start, End: end, Years: float64(y)})
		total = total.Add(decimal.NewFromInt(int64(y)))
	}
	return tl
}

// At returns the period whose [Start, End) contains t.
func (tl Timeline) At(t time.Time) (Period, bool) {
	if len(tl) == 0 {
		return Period{}, false
	}
	i := sort.Search(len(tl), func(i int) bool { return t.Before(tl[i].End) })
	if i == len(tl) || !tl[i].Contains(t) {
		return Period{}, false
	}
	return tl[i], true
}

// Start returns the first boundary, or the zero time for an empty timeline.
func (tl Timeline) Start() time.Time {
	if len(tl) == 0 {
		return time.Time{}
	}
	return tl[0].Start
}

// End returns the last boundary.
func (tl Timeline) End() time.Time {
	if len(tl) == 0 {
		return time.Time{}
	}
	return tl[len(tl)-1].End
}

// Span returns the covered years.
func (tl Timeline) Span() float64 {
	var y float64
	for _, p := range tl {
		y += p.Years
	}
	return y
}
