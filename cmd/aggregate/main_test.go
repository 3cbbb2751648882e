package main

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScenarioA(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "measurements.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hamburg;12.0\nHamburg;-5.5\nHamburg;12.1\n"), 0o644))

	out, err := run(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "{Hamburg=-5.5/6.2/12.1}\n", out)
}

func TestRunMissingFile(t *testing.T) {
	_, err := run(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestNumWorkersEnvOverride(t *testing.T) {
	t.Setenv("WORKERS", "3")
	assert.Equal(t, 3, numWorkers())

	t.Setenv("WORKERS", "not-a-number")
	assert.Equal(t, runtime.NumCPU(), numWorkers())
}
