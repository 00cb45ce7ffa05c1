// ./cmd/jyotish/calibrate.go
package main

/*
Package main provides the calibrate command.

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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mshafiee/jyotish/ayanamsa"
	"github.com/mshafiee/jyotish/internal/calibration"
)

var (
	calibrateSet  string
	calibrateTOML bool
	calibrateFit  bool
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Measure the approximate ayanamsa against the precise source",
	Long: `calibrate evaluates both ayanamsa models over a set of reference charts and
reports the largest deviation. It fails when the deviation exceeds the set's
tolerance. Without --set the built-in 1901-2049 reference set is used.`,
	Args: cobra.NoArgs,
	RunE: runCalibrate,
}

func init() {
	f := calibrateCmd.Flags()
	f.StringVar(&calibrateSet, "set", "", "TOML file of reference charts")
	f.BoolVar(&calibrateTOML, "toml", false, "print the report as TOML")
	f.BoolVar(&calibrateFit, "fit", false, "also print the best-fitting linear model")
	rootCmd.AddCommand(calibrateCmd)
}

func runCalibrate(cmd *cobra.Command, _ []string) error {
	set := calibration.Builtin()
	if calibrateSet != "" {
		s, err := calibration.Load(calibrateSet)
		if err != nil {
			return err
		}
		set = s
	}

	rt, err := openRuntime(cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	rep, err := calibration.Run(cmd.Context(), set, rt.precise, ayanamsa.DefaultLinear())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if calibrateTOML {
		if err := rep.Encode(w); err != nil {
			return err
		}
	} else {
		renderCalibration(w, rep)
	}

	if calibrateFit {
		m, err := calibration.Fit(rep)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "fitted model: %.9f° at JD %.1f, %.6f″/year\n",
			m.RefValue, m.RefJD, m.RatePerDay*3600*365.25)
	}

	if !rep.Pass {
		return fmt.Errorf("calibration failed: deviation %.6f° at %s exceeds tolerance %.4f°",
			rep.MaxDeviation, rep.Worst, rep.Tolerance)
	}
	return nil
}
