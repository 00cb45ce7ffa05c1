// ./cmd/jyotish/dasha.go
package main

/*
Package main provides the dasha command.

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
	"time"

	"github.com/spf13/cobra"

	"github.com/mshafiee/jyotish/dasha"
)

var (
	dashaBirth birthFlags
	dashaAt    string
	dashaJSON  bool
)

var dashaCmd = &cobra.Command{
	Use:   "dasha",
	Short: "Print the Vimshottari mahadasha timeline",
	Example: `  jyotish dasha --date 2000-01-01 --time 12:00 --offset +05:30 --lat 28.6139 --lon 77.2090
  jyotish dasha -d 2000-01-01 --lat 28.6 --lon 77.2 --at 2030-06-01`,
	Args: cobra.NoArgs,
	RunE: runDasha,
}

func init() {
	dashaBirth.register(dashaCmd)
	dashaCmd.Flags().StringVar(&dashaAt, "at", "", "mark the period running on this date, YYYY-MM-DD (default today)")
	dashaCmd.Flags().BoolVar(&dashaJSON, "json", false, "print the timeline as JSON")
	rootCmd.AddCommand(dashaCmd)
}

type dashaOutput struct {
	Nakshatra dasha.Placement `json:"nakshatra"`
	Timeline  dasha.Timeline  `json:"timeline"`
	Current   *dasha.Period   `json:"current,omitempty"`
}

func runDasha(cmd *cobra.Command, _ []string) error {
	in, err := dashaBirth.instant()
	if err != nil {
		return err
	}
	at := time.Now()
	if dashaAt != "" {
		if at, err = time.Parse("2006-01-02", dashaAt); err != nil {
			return fmt.Errorf("--at: %w", err)
		}
	}

	rt, err := openRuntime(cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	c, err := rt.engine.ComputeChart(cmd.Context(), in, dashaBirth.location(), cfg.Mode())
	if err != nil {
		return err
	}

	out := dashaOutput{Nakshatra: c.Nakshatra, Timeline: c.Dasha}
	if p, ok := c.Dasha.At(at); ok {
		out.Current = &p
	}
	if dashaJSON {
		return writeJSON(cmd.OutOrStdout(), out)
	}

	w := cmd.OutOrStdout()
	title(w, fmt.Sprintf("Vimshottari dasha from %s", in))
	fmt.Fprintf(w, "Moon in %s pada %d, %.1f%% of the sector elapsed\n",
		c.Nakshatra.Nakshatra.Name, c.Nakshatra.Pada, c.Nakshatra.Fraction*100)
	renderTimeline(w, c.Dasha, at)
	return nil
}
