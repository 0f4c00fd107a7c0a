package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCommand_ParseFlags(t *testing.T) {
	cmd := NewSeedCommand()
	require.NoError(t, cmd.ParseFlags([]string{"-db", "/tmp/x.sqlite", "-force"}))

	assert.Equal(t, "/tmp/x.sqlite", cmd.DatabasePath)
	assert.True(t, cmd.Force)
}

func TestSeedCommand_DefaultsFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/srv/library.sqlite")

	cmd := NewSeedCommand()
	require.NoError(t, cmd.ParseFlags(nil))

	assert.Equal(t, "/srv/library.sqlite", cmd.DatabasePath)
	assert.False(t, cmd.Force)
}

func TestSeedCommand_Run(t *testing.T) {
	var out bytes.Buffer
	cmd := &SeedCommand{DatabasePath: filepath.Join(t.TempDir(), "library.sqlite"), out: &out}

	require.NoError(t, cmd.Run())
	assert.Contains(t, out.String(), "Seeded 6 authors and 12 books")

	err := cmd.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-force")

	cmd.Force = true
	assert.NoError(t, cmd.Run())
}
