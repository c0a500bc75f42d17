package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/cyphering/internal/cli"
)

func noEnv(string) string { return "" }

func TestRun(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "model.hcl")
	model := `
node "Person" {
  mode = "merge"
  attr {
    key = { name = "$.name" }
  }
}
`
	require.NoError(t, os.WriteFile(path, []byte(model), 0o600))

	var out, errOut bytes.Buffer
	require.NoError(t, run(context.Background(), &out, &errOut, []string{"-format", "json", path}, noEnv))
	assert.Contains(t, out.String(), `"entry.name"`)
	assert.Contains(t, errOut.String(), "model expanded")
}

func TestRunShouldExit(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	require.NoError(t, run(context.Background(), &out, &errOut, []string{"-h"}, noEnv))
	assert.Contains(t, errOut.String(), "Usage:")
	assert.Zero(t, out.Len())
}

func TestRunUsageError(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	err := run(context.Background(), &out, &errOut, []string{"-format", "xml", "m.yaml"}, noEnv)
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestRunFailure(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	err := run(context.Background(), &out, &errOut, []string{filepath.Join(t.TempDir(), "missing.yaml")}, noEnv)
	require.Error(t, err)
	var exitErr *cli.ExitError
	assert.False(t, errors.As(err, &exitErr))
}
