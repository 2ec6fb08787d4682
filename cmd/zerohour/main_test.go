package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		for _, name := range []string{"scenario", "state"} {
			_ = inspectCmd.Flags().Set(name, "")
		}
		_ = rootCmd.PersistentFlags().Set("config", "")
		_ = rootCmd.PersistentFlags().Set("catalog", "")
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "zerohour version ")
}

func TestInspectCommand(t *testing.T) {
	out, err := execute(t, "inspect", "--scenario", "legal_escalation_pre_filing", "--state", "signal_convergence", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "# Legal Escalation Pre-Filing")
	assert.Contains(t, out, "**State:** `signal_convergence`")
	assert.Contains(t, out, "## Countdown")
}

func TestInspectCommand_Defaults(t *testing.T) {
	out, err := execute(t, "inspect")
	require.NoError(t, err)
	assert.Contains(t, out, "**State:** `normal`")
}

func TestInspectCommand_InvalidState(t *testing.T) {
	_, err := execute(t, "inspect", "--state", "bogus")
	assert.ErrorContains(t, err, "Invalid state: bogus")
}

func TestInspectCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zerohour.yaml")
	require.NoError(t, os.WriteFile(path, []byte("target:\n  name: ACME CORP\n  id: E-00001\n"), 0o644))

	out, err := execute(t, "inspect", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "**Target:** ACME CORP (`E-00001`)")
}

func TestInspectCommand_MissingCatalog(t *testing.T) {
	_, err := execute(t, "inspect", "--catalog", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to open scenario table")
}

func TestGraphCommand(t *testing.T) {
	t.Cleanup(func() { _ = graphCmd.Flags().Set("current", "") })

	out, err := execute(t, "graph", "--current", "signal_convergence")
	require.NoError(t, err)
	assert.Contains(t, out, "graph LR")
	assert.Contains(t, out, "class signal_convergence current")

	_, err = execute(t, "graph", "--current", "bogus")
	assert.ErrorContains(t, err, "Invalid state: bogus")
}
