// ./cmd/jyotish/ayanamsa.go
package main

/*
Package main provides the ayanamsa command.

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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mshafiee/jyotish/angle"
	"github.com/mshafiee/jyotish/ayanamsa"
	"github.com/mshafiee/jyotish/timescale"
)

var (
	ayanamsaJD    float64
	ayanamsaDate  string
	ayanamsaClock string
	ayanamsaJSON  bool
)

var ayanamsaCmd = &cobra.Command{
	Use:   "ayanamsa",
	Short: "Compare the precise and approximate ayanamsa for an instant",
	Example: `  jyotish ayanamsa --jd 2451545
  jyotish ayanamsa --date 1956-03-21 --time 00:00`,
	Args: cobra.NoArgs,
	RunE: runAyanamsa,
}

func init() {
	f := ayanamsaCmd.Flags()
	f.Float64Var(&ayanamsaJD, "jd", 0, "UT Julian day")
	f.StringVarP(&ayanamsaDate, "date", "d", "", "UTC date, YYYY-MM-DD")
	f.StringVarP(&ayanamsaClock, "time", "t", "00:00", "UTC time, HH:MM[:SS]")
	f.BoolVar(&ayanamsaJSON, "json", false, "print JSON")
	ayanamsaCmd.MarkFlagsMutuallyExclusive("jd", "date")
	ayanamsaCmd.MarkFlagsOneRequired("jd", "date")
	rootCmd.AddCommand(ayanamsaCmd)
}

type ayanamsaOutput struct {
	JulianDay   float64           `json:"jd"`
	Standard    ayanamsa.Standard `json:"standard"`
	Precise     *float64          `json:"precise,omitempty"`
	PreciseErr  string            `json:"preciseError,omitempty"`
	Approximate float64           `json:"approximate"`
	Difference  *float64          `json:"difference,omitempty"`
}

func runAyanamsa(cmd *cobra.Command, _ []string) error {
	jd := ayanamsaJD
	if ayanamsaDate != "" {
		in, err := timescale.Parse(ayanamsaDate, ayanamsaClock, "")
		if err != nil {
			return err
		}
		jd = in.JulianDay()
	}

	rt, err := openRuntime(cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	out := ayanamsaOutput{
		JulianDay:   jd,
		Standard:    rt.precise.Standard,
		Approximate: ayanamsa.DefaultLinear().At(jd),
	}
	p, err := rt.precise.Ayanamsa(cmd.Context(), jd)
	switch {
	case errors.Is(err, ayanamsa.ErrUnavailable):
		out.PreciseErr = err.Error()
	case err != nil:
		return err
	default:
		d := out.Approximate - p
		out.Precise, out.Difference = &p, &d
	}

	if ayanamsaJSON {
		return writeJSON(cmd.OutOrStdout(), out)
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "JD %.6f (%s)\n", jd, timescale.FromJulianDay(jd, 0))
	if out.Precise != nil {
		fmt.Fprintf(w, "precise      %.6f°  %s\n", *out.Precise, angle.Split(*out.Precise))
	} else {
		fmt.Fprintln(w, warnStyle.Render("precise      unavailable: "+out.PreciseErr))
	}
	fmt.Fprintf(w, "approximate  %.6f°  %s\n", out.Approximate, angle.Split(out.Approximate))
	if out.Difference != nil {
		fmt.Fprintf(w, "difference   %+.2f″\n", *out.Difference*3600)
	}
	return nil
}
