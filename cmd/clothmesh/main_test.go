package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const squareXML = `<pattern>
  <line x1="0" y1="0" x2="1" y2="0"/>
  <line x1="1" y1="0" x2="1" y2="1"/>
  <line x1="1" y1="1" x2="0" y2="1"/>
  <line x1="0" y1="1" x2="0" y2="0"/>
</pattern>`

func TestRunProducesNonEmptyCloth(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "square.xml")
	require.NoError(t, os.WriteFile(path, []byte(squareXML), 0o644))

	err := run(path, 0.1, 0.25, 1, 0.001, 0.98, 0.02, 0.02, 10)
	require.NoError(t, err)
}

func TestRunMissingFile(t *testing.T) {
	err := run("/nonexistent/draft.xml", 0.1, 0.25, 1, 0.001, 0.98, 0.02, 0.02, 10)
	require.Error(t, err)
}
