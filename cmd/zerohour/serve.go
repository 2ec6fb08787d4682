package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aretw0/zerohour"
	"github.com/aretw0/zerohour/internal/presentation/tui"
	httpadapter "github.com/aretw0/zerohour/pkg/adapters/http"
	"github.com/aretw0/zerohour/pkg/domain"
	"github.com/aretw0/zerohour/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the dashboard backend, exposing the JSON API, the SSE event stream and Prometheus metrics over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			a.cfg.Port, _ = cmd.Flags().GetString("port")
		}
		if cmd.Flags().Changed("public") {
			a.cfg.PublicDir, _ = cmd.Flags().GetString("public")
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics := observability.NewMetrics(reg, a.cfg.Scenarios)
		streams := httpadapter.NewStreamManager(a.logger)

		hooks := []domain.LifecycleHooks{metrics.Hooks(), streams.Hooks()}
		if pub := a.publisher(cmd); pub != nil {
			defer pub.Close()
			hooks = append(hooks, pub.Hooks())
		}

		dash, err := a.dashboard(cmd, hooks...)
		if err != nil {
			return err
		}
		metrics.Observe(dash.Current())

		handler := httpadapter.NewHandler(dash,
			httpadapter.WithAdminToken(a.cfg.AdminToken),
			httpadapter.WithMetrics(metrics, reg),
			httpadapter.WithStreams(streams),
			httpadapter.WithStaticDir(a.cfg.PublicDir),
			httpadapter.WithLogger(a.logger),
		)

		srv := &http.Server{
			Addr:              ":" + a.cfg.Port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		if term.IsTerminal(int(os.Stdout.Fd())) {
			tui.PrintBanner(os.Stdout, strings.TrimSpace(zerohour.Version))
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			cur := dash.Current()
			a.logger.Info("starting ZeroHour server",
				"addr", srv.Addr,
				"scenario", cur.Scenario,
				"state", cur.State,
				"public_dir", a.cfg.PublicDir,
			)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			a.logger.Info("shutting down", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				a.logger.Error("graceful shutdown did not complete", "error", err, "timeout", 5*time.Second)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			a.logger.Info("ZeroHour server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "3000", "Port to listen on (overrides PORT)")
	serveCmd.Flags().String("public", "", "Directory with the static frontend (overrides PUBLIC_DIR)")
}
