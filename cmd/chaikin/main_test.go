package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/chaikin/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, debugMode, err := loadConfig(nil)
	require.NoError(t, err)

	assert.False(t, debugMode)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chaikin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_steps: 8\nstep_interval: 250ms\nloop_policy: reset\n"), 0644))

	cfg, debugMode, err := loadConfig([]string{"-config", path, "-max-steps", "4", "-closed", "-debug"})
	require.NoError(t, err)

	assert.True(t, debugMode)
	assert.Equal(t, 4, cfg.MaxSteps, "flag beats file")
	assert.Equal(t, 250*time.Millisecond, cfg.StepInterval, "file beats default")
	assert.Equal(t, "reset", cfg.LoopPolicy)
	assert.True(t, cfg.StartClosed)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	_, _, err := loadConfig([]string{"-max-steps", "99"})
	assert.ErrorIs(t, err, config.ErrInvalidSteps)

	_, _, err = loadConfig([]string{"-loop-policy", "bounce"})
	assert.Error(t, err)

	_, _, err = loadConfig([]string{"-config", filepath.Join(t.TempDir(), "absent.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = loadConfig([]string{"-h"})
	assert.True(t, errors.Is(err, flag.ErrHelp))
}
