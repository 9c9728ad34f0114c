package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerConfig_Defaults(t *testing.T) {
	t.Setenv(EnvAddr, "")
	t.Setenv(EnvStage, "")
	t.Setenv(EnvRulesFile, "")
	t.Chdir(t.TempDir())

	cfg, err := LoadServerConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, StageDev, cfg.Stage)
	assert.Empty(t, cfg.RulesFile)
	assert.False(t, cfg.IsProduction())
}

func TestLoadServerConfig_EnvFile(t *testing.T) {
	t.Setenv(EnvAddr, "")
	t.Setenv(EnvStage, "")
	t.Setenv(EnvRulesFile, "")
	// godotenv does not override variables that are set, even when empty
	os.Unsetenv(EnvAddr)
	os.Unsetenv(EnvStage)
	os.Unsetenv(EnvRulesFile)

	path := filepath.Join(t.TempDir(), "paye.env")
	require.NoError(t, os.WriteFile(path, []byte("PAYE_ADDR=:9090\nPAYE_ENV=production\nPAYE_RULES_FILE=/etc/paye/rules.yaml\n"), 0o600))

	cfg, err := LoadServerConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/etc/paye/rules.yaml", cfg.RulesFile)
}

func TestLoadServerConfig_Errors(t *testing.T) {
	_, err := LoadServerConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	t.Setenv(EnvStage, "staging")
	t.Chdir(t.TempDir())
	_, err = LoadServerConfig()
	assert.ErrorContains(t, err, "staging")
}
