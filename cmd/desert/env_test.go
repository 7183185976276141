package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlags() (*pflag.FlagSet, *string, *int64) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	level := fs.String("log-level", "info", "")
	seed := fs.Int64("seed", 0, "")
	return fs, level, seed
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "DESERT_LOG_LEVEL", envName("log-level"))
	assert.Equal(t, "DESERT_DB", envName("db"))
}

func TestLoadEnvFillsUnsetFlags(t *testing.T) {
	t.Setenv("DESERT_LOG_LEVEL", "debug")
	t.Setenv("DESERT_SEED", "42")

	fs, level, seed := newTestFlags()
	require.NoError(t, fs.Parse([]string{"--seed", "7"}))

	require.NoError(t, loadEnv(fs, filepath.Join(t.TempDir(), "missing.env")))

	assert.Equal(t, "debug", *level)
	assert.Equal(t, int64(7), *seed, "command line wins over the environment")
}

func TestLoadEnvReadsDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DESERT_SEED=99\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("DESERT_SEED") })

	fs, _, seed := newTestFlags()
	require.NoError(t, fs.Parse(nil))

	require.NoError(t, loadEnv(fs, path))

	assert.Equal(t, int64(99), *seed)
}

func TestLoadEnvRejectsBadValue(t *testing.T) {
	t.Setenv("DESERT_SEED", "lots")

	fs, _, _ := newTestFlags()
	require.NoError(t, fs.Parse(nil))

	err := loadEnv(fs, filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DESERT_SEED")
}
