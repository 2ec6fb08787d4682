package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/zerohour"
	"github.com/aretw0/zerohour/internal/logging"
	redisadapter "github.com/aretw0/zerohour/pkg/adapters/redis"
	"github.com/aretw0/zerohour/pkg/catalog"
	"github.com/aretw0/zerohour/pkg/config"
	"github.com/aretw0/zerohour/pkg/domain"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zerohour",
	Short: "ZeroHour is the exposure dashboard demo backend",
	Long: `ZeroHour serves a scripted risk-exposure dashboard: an operator steps a
notional organization through incident scenarios and escalation states while
clients read the derived views over HTTP, SSE or MCP.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("catalog", "", "YAML scenario table replacing the built-in one")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (text, json)")
}

// app is the configuration and logger shared by the subcommands.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

// loadApp resolves the configuration layers: defaults, file, environment, flags.
func loadApp(cmd *cobra.Command) (*app, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: logging.New(level, cfg.LogFormat)}, nil
}

// dashboard builds the core with the catalog flag applied and hooks attached.
func (a *app) dashboard(cmd *cobra.Command, hooks ...domain.LifecycleHooks) (*zerohour.Dashboard, error) {
	opts := []zerohour.Option{zerohour.WithLogger(a.logger)}

	if path, _ := cmd.Flags().GetString("catalog"); path != "" {
		table, err := catalog.LoadTableFile(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, zerohour.WithTable(table))
	}
	for _, h := range hooks {
		opts = append(opts, zerohour.WithLifecycleHooks(h))
	}
	return zerohour.New(a.cfg, opts...)
}

// publisher returns the Redis fan-out when REDIS_ADDR is configured, nil otherwise.
func (a *app) publisher(cmd *cobra.Command) *redisadapter.Publisher {
	if a.cfg.RedisAddr == "" {
		return nil
	}
	pub := redisadapter.New(a.cfg.RedisAddr,
		redisadapter.WithChannel(a.cfg.RedisChannel),
		redisadapter.WithLogger(a.logger),
	)
	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
	defer cancel()
	if err := pub.Ping(ctx); err != nil {
		a.logger.Warn("redis unreachable, transitions will not be published until it recovers", "error", err, "addr", a.cfg.RedisAddr)
	} else {
		a.logger.Info("publishing transitions to redis", "addr", a.cfg.RedisAddr, "channel", pub.Channel())
	}
	return pub
}
