package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjourdan1/rgsweep/internal/deleter"
)

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("exclude:\n  - rg-prod\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"rg-prod"}, cfg.Exclude)
	assert.Equal(t, deleter.DefaultWorkers, cfg.Workers)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.DryRun)
}

func TestParseFullFile(t *testing.T) {
	data := []byte("exclude:\n  - rg-prod\n  - '^rg-keep-'\nworkers: 10\nquiet: true\ndry_run: true\n")
	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Workers)
	assert.True(t, cfg.Quiet)
	assert.True(t, cfg.DryRun)
	assert.Len(t, cfg.Exclude, 2)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("exclude: [unclosed"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "rgsweep.yaml"))
	assert.Error(t, err)
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rgsweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 3\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
}

func TestApplyDefaultsSharesPoolDefault(t *testing.T) {
	cfg := Config{}
	ApplyDefaults(&cfg)
	assert.Equal(t, deleter.DefaultWorkers, cfg.Workers)

	cfg = Config{Workers: -1}
	ApplyDefaults(&cfg)
	assert.Equal(t, deleter.DefaultWorkers, cfg.Workers)
}
