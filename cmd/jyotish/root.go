// ./cmd/jyotish/root.go
package main

/*
Package main provides the root command and configuration wiring.

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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mshafiee/jyotish/internal/config"
	"github.com/mshafiee/jyotish/internal/logging"
)

var (
	cfgFile   string
	cfg       config.Config
	configErr error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jyotish",
	Short: "Sidereal chart calculator",
	Long: `jyotish computes sidereal (Lahiri) birth charts: body positions, ascendant,
whole-sign houses, divisional charts and the Vimshottari dasha timeline.

Positions come from a JPL DE binary file when one is configured and from
built-in analytic theories otherwise.`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization
	// cycle: loadConfig refers to rootCmd.
	rootCmd.PersistentPreRunE = loadConfig
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./.jyotish.yaml or $HOME/.jyotish.yaml)")
	pf.StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
	pf.StringP("ephemeris", "e", "", "JPL DE binary file (default: built-in analytic theory)")
	pf.StringP("mode", "m", "precise", "ayanamsa mode: precise or approximate")
	pf.String("remote", "", "jyotish server URL used as the precise ayanamsa source")
	pf.String("cache", "", "SQLite file caching precise ayanamsa results")
}

// flagKeys maps persistent flags onto config keys.
var flagKeys = map[string]string{
	"loglevel":  "log_level",
	"ephemeris": "ephemeris.path",
	"mode":      "ayanamsa.mode",
	"remote":    "ayanamsa.remote_url",
	"cache":     "ayanamsa.cache_path",
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	configErr = config.Setup(cfgFile)
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	if configErr != nil {
		return configErr
	}
	for flag, key := range flagKeys {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			return err
		}
	}

	c, err := config.Load()
	if err != nil {
		return err
	}
	if err := logging.SetLevel(c.LogLevel); err != nil {
		return err
	}
	if err := logging.SetFormat(c.LogFormat); err != nil {
		return err
	}
	logging.Log.SetOutput(cmd.ErrOrStderr())
	cfg = c
	return nil
}
