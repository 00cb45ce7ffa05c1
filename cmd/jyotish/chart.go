// ./cmd/jyotish/chart.go
package main

/*
Package main provides the chart command.

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
	"github.com/spf13/cobra"
)

var (
	chartBirth  birthFlags
	chartJSON   bool
	chartVargas bool
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Compute a sidereal birth chart",
	Example: `  jyotish chart --date 2000-01-01 --time 12:00 --offset +05:30 --lat 28.6139 --lon 77.2090
  jyotish chart -d 1947-08-15 -t 00:00 --tz Asia/Kolkata --lat 28.61 --lon 77.21 --vargas`,
	Args: cobra.NoArgs,
	RunE: runChart,
}

func init() {
	chartBirth.register(chartCmd)
	chartCmd.Flags().BoolVar(&chartJSON, "json", false, "print the chart as JSON")
	chartCmd.Flags().BoolVar(&chartVargas, "vargas", false, "include the divisional charts")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, _ []string) error {
	in, err := chartBirth.instant()
	if err != nil {
		return err
	}

	rt, err := openRuntime(cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	c, err := rt.engine.ComputeChart(cmd.Context(), in, chartBirth.location(), cfg.Mode())
	if err != nil {
		return err
	}
	if chartJSON {
		return writeJSON(cmd.OutOrStdout(), c)
	}
	renderChart(cmd.OutOrStdout(), c, chartVargas)
	return nil
}
