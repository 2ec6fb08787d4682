package main

import (
	"fmt"

	"github.com/aretw0/zerohour/internal/presentation/graph"
	"github.com/aretw0/zerohour/pkg/domain"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the escalation sequence as a Mermaid diagram",
	Long:  `Outputs a Mermaid flowchart (graph LR) of the configured states, optionally highlighting one of them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		var overlay *graph.Overlay
		if current, _ := cmd.Flags().GetString("current"); current != "" {
			if !a.cfg.HasState(domain.State(current)) {
				return &domain.ValidationError{Kind: domain.ErrInvalidState, Value: current, Valid: a.cfg.StateNames()}
			}
			overlay = &graph.Overlay{Current: domain.State(current)}
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(a.cfg.States, overlay))
		return err
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("current", "", "State to highlight")
}
