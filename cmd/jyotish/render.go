// ./cmd/jyotish/render.go
package main

/*
Package main provides terminal rendering of charts and tables.

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
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mshafiee/jyotish"
	"github.com/mshafiee/jyotish/angle"
	"github.com/mshafiee/jyotish/dasha"
	"github.com/mshafiee/jyotish/ephemeris"
	"github.com/mshafiee/jyotish/internal/calibration"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	markStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")).Padding(0, 1)
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func title(w io.Writer, s string) {
	fmt.Fprintln(w, titleStyle.Render(s))
}

func renderChart(w io.Writer, c *jyotish.Chart, vargas bool) {
	title(w, fmt.Sprintf("Chart for %s at %.4f, %.4f", c.Instant, c.Location.Latitude, c.Location.Longitude))
	fmt.Fprintf(w, "Julian day  %.6f\n", c.JulianDay)
	fmt.Fprintf(w, "Ayanamsa    %s (%.6f°, %s)\n", angle.Split(c.Ayanamsa), c.Ayanamsa, c.Mode)
	if c.Degraded {
		fmt.Fprintln(w, warnStyle.Render("precise source unavailable: approximate ayanamsa used"))
	}
	fmt.Fprintf(w, "Ascendant   %s\n", c.Ascendant.Formatted)
	fmt.Fprintf(w, "Nakshatra   %s pada %d (Moon)\n\n", c.Nakshatra.Nakshatra.Name, c.Nakshatra.Pada)

	bt := newTable("Body", "Position", "Longitude", "House", "Speed", "Lord", "Nature")
	for _, p := range c.Bodies {
		name := p.Body.String()
		if p.Retrograde {
			name += " (R)"
		}
		bt.Row(name, p.DMS.String(), fmt.Sprintf("%.4f", p.Longitude), strconv.Itoa(p.House),
			fmt.Sprintf("%+.4f", p.Speed), p.Lord, string(p.Nature))
	}
	fmt.Fprintln(w, bt.Render())

	ht := newTable("House", "Sign", "Lord", "Occupants")
	for _, h := range c.Houses {
		occ := make([]string, len(h.Occupants))
		for i, b := range h.Occupants {
			occ[i] = b.String()
		}
		ht.Row(strconv.Itoa(h.Number), h.Name, h.Lord, strings.Join(occ, ", "))
	}
	fmt.Fprintln(w, ht.Render())

	if vargas {
		renderVargas(w, c)
	}
}

func renderVargas(w io.Writer, c *jyotish.Chart) {
	headers := []string{"Varga", "Asc"}
	for _, b := range jyotish.Bodies {
		headers = append(headers, b.String())
	}
	vt := newTable(headers...)
	for _, v := range c.Vargas {
		row := []string{fmt.Sprintf("D%d %s", v.N, v.Name), v.Ascendant.SignName}
		for _, b := range jyotish.Bodies {
			row = append(row, v.Positions[b].SignName)
		}
		vt.Row(row...)
	}
	fmt.Fprintln(w, vt.Render())
}

// renderTimeline prints the mahadasha periods, marking the one containing now.
func renderTimeline(w io.Writer, tl dasha.Timeline, now time.Time) {
	current, hasCurrent := tl.At(now)
	t := newTable("", "Lord", "Start", "End", "Years").
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case hasCurrent && row >= 0 && row < len(tl) && tl[row].Start.Equal(current.Start):
				return markStyle
			}
			return cellStyle
		})
	for _, p := range tl {
		mark := ""
		if hasCurrent && p.Start.Equal(current.Start) {
			mark = "▶"
		}
		years := fmt.Sprintf("%.2f", p.Years)
		if p.Partial {
			years += " (balance)"
		}
		t.Row(mark, string(p.Lord), p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"), years)
	}
	fmt.Fprintln(w, t.Render())
}

func renderInfo(w io.Writer, i ephemeris.Info) {
	title(w, i.Name)
	t := newTable("Field", "Value")
	t.Row("DE version", strconv.Itoa(i.Version))
	t.Row("Span (JED)", fmt.Sprintf("%.1f to %.1f", i.Start, i.End))
	t.Row("Step (days)", fmt.Sprintf("%.2f", i.Step))
	t.Row("AU (km)", fmt.Sprintf("%.8f", i.AU))
	t.Row("Earth/Moon mass ratio", fmt.Sprintf("%.8f", i.EMRAT))
	t.Row("Constants", strconv.Itoa(i.Constants))
	t.Row("Record size (bytes)", strconv.Itoa(i.RecordSize))
	t.Row("Coefficients per record", strconv.Itoa(i.Coefficients))
	t.Row("Byte-swapped", strconv.FormatBool(i.Swapped))
	t.Row("Nutations", strconv.FormatBool(i.Nutations))
	t.Row("Librations", strconv.FormatBool(i.Librations))
	t.Row("TT-TDB", strconv.FormatBool(i.TTMinusTDB))
	fmt.Fprintln(w, t.Render())
}

func renderConstants(w io.Writer, cs []ephemeris.Constant) {
	t := newTable("#", "Name", "Value")
	for i, c := range cs {
		t.Row(strconv.Itoa(i), c.Name, strconv.FormatFloat(c.Value, 'g', -1, 64))
	}
	fmt.Fprintln(w, t.Render())
}

func renderMasses(w io.Writer, ms []ephemeris.Mass) {
	t := newTable("Body", "mass(obj)/mass(sun)", "mass(sun)/mass(obj)", "GM (km³/s²)", "GM (AU³/day²)")
	for _, m := range ms {
		t.Row(m.Name,
			fmt.Sprintf("%.15e", m.Ratio),
			fmt.Sprintf("%.15e", m.Inverse),
			fmt.Sprintf("%.15e", m.GMKm),
			fmt.Sprintf("%.15e", m.GM))
	}
	fmt.Fprintln(w, t.Render())
}

// stateRow is one line of `ephem positions`.
type stateRow struct {
	Target    string           `json:"target"`
	Position  ephemeris.Vector `json:"position"`
	Velocity  ephemeris.Vector `json:"velocity"`
	Distance  float64          `json:"distance"`
	Longitude *float64         `json:"longitude,omitempty"`
	Speed     *float64         `json:"speed,omitempty"`
}

func renderStates(w io.Writer, et float64, center ephemeris.Target, rows []stateRow) {
	title(w, fmt.Sprintf("States at JED %.4f relative to %s (AU, AU/day)", et, center))
	t := newTable("Target", "X", "Y", "Z", "VX", "VY", "VZ", "Distance", "Tropical λ")
	for _, r := range rows {
		lon := ""
		if r.Longitude != nil {
			lon = fmt.Sprintf("%.4f", *r.Longitude)
		}
		t.Row(r.Target,
			fmt.Sprintf("%.6e", r.Position.X), fmt.Sprintf("%.6e", r.Position.Y), fmt.Sprintf("%.6e", r.Position.Z),
			fmt.Sprintf("%.6e", r.Velocity.X), fmt.Sprintf("%.6e", r.Velocity.Y), fmt.Sprintf("%.6e", r.Velocity.Z),
			fmt.Sprintf("%.6f", r.Distance), lon)
	}
	fmt.Fprintln(w, t.Render())
}

func renderCalibration(w io.Writer, r *calibration.Report) {
	t := newTable("Chart", "JD", "Precise", "Approximate", "Deviation (″)", "Source error (″)")
	for _, row := range r.Rows {
		srcErr := ""
		if row.Reference != 0 {
			srcErr = fmt.Sprintf("%+.3f", row.SourceError*3600)
		}
		t.Row(row.Name, fmt.Sprintf("%.4f", row.JulianDay),
			fmt.Sprintf("%.6f", row.Precise), fmt.Sprintf("%.6f", row.Approximate),
			fmt.Sprintf("%+.3f", row.Deviation*3600), srcErr)
	}
	fmt.Fprintln(w, t.Render())

	verdict := titleStyle.Render("PASS")
	if !r.Pass {
		verdict = warnStyle.Render("FAIL")
	}
	fmt.Fprintf(w, "max |deviation| %.6f° (%s), mean %.6f°, tolerance %.4f°: %s\n",
		r.MaxDeviation, r.Worst, r.MeanAbsDeviation, r.Tolerance, verdict)
}
