package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/zerohour/pkg/adapters/mcp"
	"github.com/aretw0/zerohour/pkg/domain"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the dashboard as MCP tools so AI agents can read the exposure views
and drive the scenario.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		var hooks []domain.LifecycleHooks
		if pub := a.publisher(cmd); pub != nil {
			defer pub.Close()
			hooks = append(hooks, pub.Hooks())
		}

		dash, err := a.dashboard(cmd, hooks...)
		if err != nil {
			return err
		}

		srv := mcp.NewServer(dash,
			mcp.WithAdminToken(a.cfg.AdminToken),
			mcp.WithLogger(a.logger),
		)

		switch transport {
		case "stdio":
			a.logger.Info("starting ZeroHour MCP server (stdio)")
			if err := srv.ServeStdio(); err != nil {
				return fmt.Errorf("MCP server execution failed: %w", err)
			}
			return nil
		case "sse":
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil {
				return fmt.Errorf("MCP server execution failed: %w", err)
			}
			a.logger.Info("MCP server stopped gracefully")
			return nil
		default:
			return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "Transport to use (stdio, sse)")
	mcpCmd.Flags().Int("port", 8081, "Port for SSE transport")
}
