package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("HUFF_MINIMIZE", "")
	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Empty(t, cfg.DatabaseURL)
	require.True(t, cfg.Minimize)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/huff")
	t.Setenv("HUFF_MINIMIZE", "false")
	t.Setenv("HUFF_DEBUG", "1")
	cfg := Load()
	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, "postgres://u:p@localhost/huff", cfg.DatabaseURL)
	require.False(t, cfg.Minimize)
	require.True(t, cfg.Debug)
}
