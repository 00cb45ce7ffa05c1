// ./cmd/jyotish/serve.go
package main

/*
Package main provides the serve command.

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
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mshafiee/jyotish/internal/api"
	"github.com/mshafiee/jyotish/internal/config"
	"github.com/mshafiee/jyotish/internal/logging"
)

// shutdownGrace bounds how long in-flight requests may run after a signal.
const shutdownGrace = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve charts over HTTP",
	Long: `serve exposes POST /api/chart, GET /api/ayanamsa, GET /api/ephemeris and
GET /api/health. Edits to the config file are picked up for the log level
without a restart.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("listen", ":8080", "address to listen on")
	_ = viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	rt, err := openRuntime(cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	h := api.NewHandler(rt.engine, logging.Log)
	h.Source = rt.source
	h.Info = rt.info()
	h.DefaultMode = cfg.Mode()
	if cfg.Server.Metrics {
		h.Metrics = api.NewMetrics("")
	}

	srv := &http.Server{
		Addr:         cfg.Server.Listen,
		Handler:      api.NewRouter(h, cfg.Server.AllowedOrigins),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	if file := viper.ConfigFileUsed(); file != "" {
		viper.OnConfigChange(func(e fsnotify.Event) {
			if err := applyConfigChange(e); err != nil {
				logging.Log.WithError(err).WithField("file", e.Name).Warn("config reload rejected")
			}
		})
		viper.WatchConfig()
		logging.Log.WithField("file", file).Info("watching config")
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Log.WithField("addr", srv.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// applyConfigChange re-applies the settings that can change while serving.
// Everything else needs a restart.
func applyConfigChange(e fsnotify.Event) error {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return nil
	}
	c, err := config.Load()
	if err != nil {
		return err
	}
	if err := logging.SetLevel(c.LogLevel); err != nil {
		return err
	}
	logging.Log.WithField("log_level", c.LogLevel).Info("config reloaded")
	return nil
}
