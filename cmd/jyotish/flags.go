// ./cmd/jyotish/flags.go
package main

/*
Package main provides the shared birth-data flags.

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

	"github.com/mshafiee/jyotish"
	"github.com/mshafiee/jyotish/timescale"
)

// birthFlags collects a civil instant and a location from flags.
type birthFlags struct {
	date     string
	clock    string
	offset   string
	timezone string
	lat      float64
	lon      float64
}

func (b *birthFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&b.date, "date", "d", "", "civil date, YYYY-MM-DD")
	f.StringVarP(&b.clock, "time", "t", "12:00", "civil time, HH:MM[:SS]")
	f.StringVarP(&b.offset, "offset", "o", "", "UTC offset such as +05:30 (default UTC)")
	f.StringVar(&b.timezone, "tz", "", "IANA time zone such as Asia/Kolkata, instead of --offset")
	f.Float64Var(&b.lat, "lat", 0, "latitude in degrees, north positive")
	f.Float64Var(&b.lon, "lon", 0, "longitude in degrees, east positive")
	_ = cmd.MarkFlagRequired("date")
	cmd.MarkFlagsMutuallyExclusive("offset", "tz")
}

func (b *birthFlags) instant() (timescale.Instant, error) {
	in, err := timescale.Parse(b.date, b.clock, b.offset)
	if err != nil {
		return in, fmt.Errorf("%w: %w", jyotish.ErrInvalidInput, err)
	}
	if b.timezone != "" {
		if in, err = in.WithZone(b.timezone); err != nil {
			return in, fmt.Errorf("%w: %w", jyotish.ErrInvalidInput, err)
		}
	}
	return in, nil
}

func (b *birthFlags) location() jyotish.Location {
	return jyotish.Location{Latitude: b.lat, Longitude: b.lon}
}
