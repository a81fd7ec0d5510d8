// Copyright 2025 The Liftoff Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// liftoff-demo is a small HTTP server wired through the liftoff lifecycle:
// register loads configuration and opens the listener, run starts serving,
// and teardown drains the server before the process exits. Interrupts and
// termination signals flow through the same teardown path.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/liftoff-sh/liftoff"
	"github.com/liftoff-sh/liftoff/internal/log"
	"github.com/liftoff-sh/liftoff/pkg/metrics"
)

// Version information (injected via ldflags at build time)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

type demoServer struct {
	cfg      *Config
	logger   *slog.Logger
	listener net.Listener
	server   *http.Server
	registry *prometheus.Registry
	app      *liftoff.App
}

// register loads config, builds the logger, and claims the listen address.
// Failing here keeps run from ever starting.
func (d *demoServer) register(configPath, addrOverride string) liftoff.Hook {
	return func(ctx context.Context) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		if addrOverride != "" {
			cfg.Server.Addr = addrOverride
		}
		d.cfg = cfg

		logCfg := log.FromEnv()
		if cfg.Log.Level != "" {
			logCfg.Level = cfg.Log.Level
		}
		if cfg.Log.Format != "" {
			logCfg.Format = log.Format(cfg.Log.Format)
		}
		d.logger = log.WithComponent(log.New(logCfg), "liftoff-demo")
		slog.SetDefault(d.logger)

		ln, err := net.Listen("tcp", cfg.Server.Addr)
		if err != nil {
			return fmt.Errorf("listen on %s: %w", cfg.Server.Addr, err)
		}
		d.listener = ln

		d.logger.Info("registered",
			slog.String("addr", ln.Addr().String()),
			slog.String("version", version),
		)
		return nil
	}
}

// run starts serving in the background and returns; the process stays up
// until a signal or an explicit exit drives teardown.
func (d *demoServer) run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	mux.Handle("/metrics", promhttp.HandlerFor(d.registry, promhttp.HandlerOpts{}))

	d.server = &http.Server{Handler: mux}

	go func() {
		if err := d.server.Serve(d.listener); err != nil && err != http.ErrServerClosed {
			d.logger.Error("server failed", slog.Any("error", err))
			d.app.Exit(1)
		}
	}()

	d.logger.Info("serving", slog.String("addr", d.listener.Addr().String()))
	return nil
}

// teardown drains in-flight requests before the process terminates.
func (d *demoServer) teardown(ctx context.Context) error {
	if d.server == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return d.server.Shutdown(shutdownCtx)
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:     "liftoff-demo",
		Short:   "Example HTTP server driven by the liftoff lifecycle",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		RunE: func(cmd *cobra.Command, args []string) error {
			demo := &demoServer{registry: prometheus.NewRegistry()}

			collector := metrics.NewCollector("liftoff_demo")
			if err := collector.Register(demo.registry); err != nil {
				return fmt.Errorf("register metrics: %w", err)
			}

			app, err := liftoff.New(
				liftoff.WithRegister(demo.register(configPath, addr)),
				liftoff.WithRun(demo.run),
				liftoff.WithTeardown(demo.teardown),
			)
			if err != nil {
				return err
			}
			demo.app = app
			collector.Observe(app)

			if err := app.Boot(cmd.Context(), nil); err != nil {
				return err
			}

			// The signal adapter owns shutdown from here.
			select {}
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides config)")

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
