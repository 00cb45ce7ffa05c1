// ./cmd/jyotish/cache.go
package main

/*
Package main provides the cache maintenance commands.

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
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mshafiee/jyotish/internal/logging"
	"github.com/mshafiee/jyotish/internal/store"
)

var cacheOlderThan time.Duration

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Maintain the precise ayanamsa cache",
	Long:  "cache operates on the SQLite file given by --cache or ayanamsa.cache_path.",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize cached entries per standard",
	Args:  cobra.NoArgs,
	RunE: withCache(func(cmd *cobra.Command, db *store.DB) error {
		st, err := db.Stats(cmd.Context())
		if err != nil {
			return err
		}
		t := newTable("Standard", "Entries", "First JD", "Last JD")
		for _, s := range st {
			t.Row(string(s.Standard), strconv.Itoa(s.Entries),
				fmt.Sprintf("%.4f", s.MinJD), fmt.Sprintf("%.4f", s.MaxJD))
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return nil
	}),
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete cached entries older than --older-than",
	Args:  cobra.NoArgs,
	RunE: withCache(func(cmd *cobra.Command, db *store.DB) error {
		n, err := db.Prune(cmd.Context(), time.Now().Add(-cacheOlderThan))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "pruned %d entries\n", n)
		return nil
	}),
}

func init() {
	cachePruneCmd.Flags().DurationVar(&cacheOlderThan, "older-than", 30*24*time.Hour, "age of the entries to delete")
	cacheCmd.AddCommand(cacheStatsCmd, cachePruneCmd)
	rootCmd.AddCommand(cacheCmd)
}

func withCache(fn func(*cobra.Command, *store.DB) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if cfg.Ayanamsa.CachePath == "" {
			return errors.New("no cache file: pass --cache or set ayanamsa.cache_path")
		}
		db, err := store.Open(cfg.Ayanamsa.CachePath, logging.Log)
		if err != nil {
			return err
		}
		defer db.Close()
		return fn(cmd, db)
	}
}
