// ./cmd/jyotish/ephem.go
package main

/*
Package main provides the ephem commands for inspecting DE files.

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
	"strings"

	"github.com/spf13/cobra"

	"github.com/mshafiee/jyotish"
	"github.com/mshafiee/jyotish/ephemeris"
	"github.com/mshafiee/jyotish/internal/logging"
	"github.com/mshafiee/jyotish/timescale"
)

var (
	ephemJSON      bool
	ephemConstants bool
	ephemJD        float64
	ephemCenter    string
	ephemSpecials  bool
)

var ephemCmd = &cobra.Command{
	Use:   "ephem",
	Short: "Inspect a JPL DE binary ephemeris",
	Long:  "ephem reads the file given by --ephemeris or ephemeris.path.",
}

var ephemInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the header of the ephemeris file",
	Args:  cobra.NoArgs,
	RunE: withEphemeris(func(cmd *cobra.Command, eph *ephemeris.Ephemeris) error {
		info := eph.Info()
		if ephemJSON {
			out := struct {
				ephemeris.Info
				ConstantList []ephemeris.Constant `json:"constantList,omitempty"`
			}{Info: info}
			if ephemConstants {
				out.ConstantList = eph.Constants()
			}
			return writeJSON(cmd.OutOrStdout(), out)
		}
		renderInfo(cmd.OutOrStdout(), info)
		if ephemConstants {
			renderConstants(cmd.OutOrStdout(), eph.Constants())
		}
		return nil
	}),
}

var ephemPositionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "Print state vectors of the major bodies",
	Example: `  jyotish ephem positions --ephemeris de440.bin --jd 2451545
  jyotish ephem positions -e de440.bin --center earth --specials`,
	Args: cobra.NoArgs,
	RunE: withEphemeris(runEphemPositions),
}

var ephemMassesCmd = &cobra.Command{
	Use:   "masses",
	Short: "Print body masses recorded in the ephemeris constants",
	Args:  cobra.NoArgs,
	RunE: withEphemeris(func(cmd *cobra.Command, eph *ephemeris.Ephemeris) error {
		ms, err := eph.Masses()
		if err != nil {
			return err
		}
		if ephemJSON {
			return writeJSON(cmd.OutOrStdout(), ms)
		}
		renderMasses(cmd.OutOrStdout(), ms)
		return nil
	}),
}

func init() {
	ephemCmd.PersistentFlags().BoolVar(&ephemJSON, "json", false, "print JSON")
	ephemInfoCmd.Flags().BoolVar(&ephemConstants, "constants", false, "also list every header constant")
	ephemPositionsCmd.Flags().Float64Var(&ephemJD, "jd", timescale.J2000, "UT Julian day")
	ephemPositionsCmd.Flags().StringVar(&ephemCenter, "center", "ssb", "ssb, sun, earth, emb or moon")
	ephemPositionsCmd.Flags().BoolVar(&ephemSpecials, "specials", false, "include nutations, librations and TT-TDB when present")

	ephemCmd.AddCommand(ephemInfoCmd, ephemPositionsCmd, ephemMassesCmd)
	rootCmd.AddCommand(ephemCmd)
}

// withEphemeris opens the configured file around fn.
func withEphemeris(fn func(*cobra.Command, *ephemeris.Ephemeris) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if cfg.Ephemeris.Path == "" {
			return errors.New("no ephemeris file: pass --ephemeris or set ephemeris.path")
		}
		eph, err := ephemeris.Open(cfg.Ephemeris.Path, ephemeris.WithLogger(logging.Log))
		if err != nil {
			return err
		}
		defer eph.Close()
		return fn(cmd, eph)
	}
}

var centers = map[string]ephemeris.Target{
	"ssb":   ephemeris.SolarSystemBarycenter,
	"sun":   ephemeris.Sun,
	"earth": ephemeris.Earth,
	"emb":   ephemeris.EarthMoonBarycenter,
	"moon":  ephemeris.Moon,
}

// chartBodies maps state targets onto chart bodies for the tropical column.
var chartBodies = map[ephemeris.Target]jyotish.Body{
	ephemeris.Sun:     jyotish.Sun,
	ephemeris.Moon:    jyotish.Moon,
	ephemeris.Mercury: jyotish.Mercury,
	ephemeris.Venus:   jyotish.Venus,
	ephemeris.Mars:    jyotish.Mars,
	ephemeris.Jupiter: jyotish.Jupiter,
	ephemeris.Saturn:  jyotish.Saturn,
}

func runEphemPositions(cmd *cobra.Command, eph *ephemeris.Ephemeris) error {
	center, ok := centers[strings.ToLower(ephemCenter)]
	if !ok {
		return fmt.Errorf("unknown center %q", ephemCenter)
	}
	et := timescale.TerrestrialTime(ephemJD)

	var rows []stateRow
	for t := ephemeris.Mercury; t <= ephemeris.EarthMoonBarycenter; t++ {
		if t == center {
			continue
		}
		pos, vel, err := eph.State(et, t, center)
		if err != nil {
			return fmt.Errorf("%s: %w", t, err)
		}
		row := stateRow{Target: t.String(), Position: pos, Velocity: vel, Distance: pos.Norm()}
		if b, ok := chartBodies[t]; ok {
			p, err := eph.Position(cmd.Context(), ephemJD, b)
			if err != nil {
				return fmt.Errorf("%s: %w", b, err)
			}
			row.Longitude, row.Speed = &p.Longitude, &p.Speed
		}
		rows = append(rows, row)
	}

	if ephemSpecials {
		info := eph.Info()
		present := map[ephemeris.Target]bool{
			ephemeris.Nutations:  info.Nutations,
			ephemeris.Librations: info.Librations,
			ephemeris.TTMinusTDB: info.TTMinusTDB,
		}
		for _, t := range []ephemeris.Target{ephemeris.Nutations, ephemeris.Librations, ephemeris.TTMinusTDB} {
			if !present[t] {
				continue
			}
			pos, vel, err := eph.State(et, t, 0)
			if err != nil {
				return fmt.Errorf("%s: %w", t, err)
			}
			rows = append(rows, stateRow{Target: t.String(), Position: pos, Velocity: vel})
		}
	}

	if ephemJSON {
		return writeJSON(cmd.OutOrStdout(), rows)
	}
	renderStates(cmd.OutOrStdout(), et, center, rows)
	return nil
}
