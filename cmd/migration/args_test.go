package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, steps)

	steps, err = parseSteps([]string{" 3 "})
	require.NoError(t, err)
	assert.Equal(t, 3, steps)

	_, err = parseSteps([]string{"0"})
	require.Error(t, err)
	_, err = parseSteps([]string{"two"})
	require.Error(t, err)
}

func TestParseVersionAndTarget(t *testing.T) {
	v, err := parseVersion("1771900100")
	require.NoError(t, err)
	assert.Equal(t, 1771900100, v)

	_, err = parseVersion("-2")
	require.Error(t, err)

	target, err := parseTarget("1771900000")
	require.NoError(t, err)
	assert.Equal(t, uint(1771900000), target)

	_, err = parseTarget("-1")
	require.Error(t, err)
}

func TestResolveMigrationsDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MIGRATIONS_DIR", "")
	t.Setenv("MIGRATIONS_PATH", "")

	got, err := resolveMigrationsDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	t.Setenv("MIGRATIONS_DIR", dir)
	got, err = resolveMigrationsDir("/definitely/not/here")
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestEnvBool(t *testing.T) {
	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", " Yes ")
	assert.True(t, envBool("DB_DISABLE_PREPARED_BINARY_RESULT"))

	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "off")
	assert.False(t, envBool("DB_DISABLE_PREPARED_BINARY_RESULT"))
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := rootCmd()
	for _, name := range []string{"up", "down", "version", "force", "goto"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}
