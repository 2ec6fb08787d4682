package main

import (
	"fmt"
	"os"

	"github.com/aretw0/zerohour/internal/presentation/tui"
	"github.com/aretw0/zerohour/pkg/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Render every view for a scenario and state",
	Long: `Prints the summary, domains, timeline, signals and countdown of a
(scenario, state) pair as markdown. Output is styled when stdout is a terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		dash, err := a.dashboard(cmd)
		if err != nil {
			return err
		}

		scenario, _ := cmd.Flags().GetString("scenario")
		state, _ := cmd.Flags().GetString("state")
		if scenario == "" {
			scenario = string(a.cfg.DefaultScenario)
		}
		if state == "" {
			state = string(a.cfg.DefaultState)
		}
		if !a.cfg.HasScenario(domain.Scenario(scenario)) {
			return &domain.ValidationError{Kind: domain.ErrInvalidScenario, Value: scenario, Valid: a.cfg.ScenarioNames()}
		}
		if !a.cfg.HasState(domain.State(state)) {
			return &domain.ValidationError{Kind: domain.ErrInvalidState, Value: state, Valid: a.cfg.StateNames()}
		}

		md := tui.BuildReport(dash.Catalog(), domain.Scenario(scenario), domain.State(state)).Markdown()

		out := cmd.OutOrStdout()
		raw, _ := cmd.Flags().GetBool("raw")
		if f, ok := out.(*os.File); !raw && ok && term.IsTerminal(int(f.Fd())) {
			render, err := tui.NewRenderer()
			if err != nil {
				return err
			}
			styled, err := render(md)
			if err != nil {
				return fmt.Errorf("failed to render markdown: %w", err)
			}
			md = styled
		}

		_, err = fmt.Fprint(out, md)
		return err
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringP("scenario", "s", "", "Scenario to inspect (defaults to DEFAULT_SCENARIO)")
	inspectCmd.Flags().StringP("state", "t", "", "State to inspect (defaults to DEFAULT_STATE)")
	inspectCmd.Flags().Bool("raw", false, "Print plain markdown even on a terminal")
}
