package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing3d/field"
	"landing3d/profile"
)

func TestParseEnvKeepsDefaults(t *testing.T) {
	cfg := field.DefaultConfig()
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, field.DefaultConfig(), cfg)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("LANDING3D_PARTICLES", "12")
	t.Setenv("LANDING3D_THEME", "african")
	t.Setenv("LANDING3D_PROFILE_COOLDOWN", "30s")

	fieldCfg := field.DefaultConfig()
	profCfg := profile.DefaultConfig()
	require.NoError(t, ParseEnv(&fieldCfg, &profCfg))

	assert.Equal(t, 12, fieldCfg.ParticleCount)
	assert.Equal(t, "african", fieldCfg.Theme)
	assert.Equal(t, 30*time.Second, profCfg.Cooldown)
	assert.Equal(t, profile.DefaultConfig().Dir, profCfg.Dir)
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("LANDING3D_PARTICLES", "lots")
	cfg := field.DefaultConfig()
	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestNewLogger(t *testing.T) {
	for _, debug := range []bool{true, false} {
		logger, err := NewLogger(debug)
		require.NoError(t, err)
		assert.Equal(t, debug, logger.Core().Enabled(-1))
	}
}
