package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aexoo-ai/spark-id/sparkid"
)

func clearBoundEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "GIN_MODE", "LOG_LEVEL", "ID_ENTROPY_BITS", "ID_ALPHABET", "ID_MAX_PREFIX_LENGTH", "ID_SEPARATOR", "ID_CASE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearBoundEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8094, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
	assert.Equal(t, sparkid.DefaultEntropyBits, cfg.ID.EntropyBits)
	assert.Equal(t, sparkid.DefaultAlphabet, cfg.ID.Alphabet)
	assert.Equal(t, sparkid.DefaultMaxPrefixLength, cfg.ID.MaxPrefixLength)
	assert.Equal(t, sparkid.DefaultSeparator, cfg.ID.Separator)
	assert.Equal(t, string(sparkid.DefaultCase), cfg.ID.Case)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearBoundEnv(t)
	t.Setenv("PORT", "9100")
	t.Setenv("GIN_MODE", "test")
	t.Setenv("ID_ENTROPY_BITS", "96")
	t.Setenv("ID_CASE", "lower")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "test", cfg.Server.Mode)
	assert.Equal(t, 96, cfg.ID.EntropyBits)
	assert.Equal(t, "lower", cfg.ID.Case)
}

func TestIDConfigOptions(t *testing.T) {
	t.Cleanup(sparkid.ResetConfig)

	id := IDConfig{EntropyBits: 40, Separator: "-", Case: "Lower"}
	sparkid.Configure(id.Options()...)

	got, err := sparkid.Generate("job")
	require.NoError(t, err)
	assert.Regexp(t, `^job-[a-z2-9]{8}$`, got)

	// Unset fields stay on library defaults.
	cfg := sparkid.GetConfig()
	assert.Equal(t, sparkid.DefaultAlphabet, cfg.Alphabet)
	assert.Equal(t, sparkid.DefaultMaxPrefixLength, cfg.MaxPrefixLength)
}

func TestIDConfigOptionsEmptyIsNoOp(t *testing.T) {
	assert.Empty(t, IDConfig{}.Options())
}
