package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/zerohour/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Len(t, cfg.States, 4)
	assert.Len(t, cfg.Scenarios, 4)
	assert.Len(t, cfg.Domains, 4)
	assert.Equal(t, domain.ScenarioCyberBreach, cfg.DefaultScenario)
	assert.Equal(t, domain.StateNormal, cfg.DefaultState)
	assert.Equal(t, "MERIDIAN HOLDINGS", cfg.Target.Name)
	assert.Equal(t, "E-08471", cfg.Target.ID)
	assert.Equal(t, CountdownDefaults{Detected: -106, WindowCloses: 98, ExposureLost: 248}, cfg.Countdown)
}

func TestStateIndex(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0, cfg.StateIndex(domain.StateNormal))
	assert.Equal(t, 3, cfg.StateIndex(domain.StateEscalationImminent))
	assert.Equal(t, -1, cfg.StateIndex("unknown"))
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Port, cfg.Port)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zerohour.yaml")
	content := `
port: "9090"
target:
  name: ACME CORP
  id: E-00001
countdown:
  window_closes: 40
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "ACME CORP", cfg.Target.Name)
	assert.Equal(t, 40, cfg.Countdown.WindowCloses)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, 248, cfg.Countdown.ExposureLost)
	assert.Equal(t, "DEMO_ADMIN_TOKEN", cfg.AdminToken)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zerohour.yaml")
	require.NoError(t, os.WriteFile(path, []byte("admin_token: from-file\n"), 0o644))

	t.Setenv("ADMIN_TOKEN", "from-env")
	t.Setenv("PORT", "4000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.AdminToken)
	assert.Equal(t, "4000", cfg.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestLoad_InvalidDefaults(t *testing.T) {
	t.Setenv("DEFAULT_STATE", "meltdown")

	_, err := Load("")
	assert.ErrorContains(t, err, `default state "meltdown"`)
}

func TestValidate_LogFormat(t *testing.T) {
	cfg := Default()
	cfg.LogFormat = "xml"
	assert.ErrorContains(t, cfg.Validate(), "unknown log format")
}
