package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "0.4.0"
	commit = "9f8e7d6"
	date = "2026-01-15"

	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Contains(t, stdout, "classmate 0.4.0")
	require.Contains(t, stdout, "9f8e7d6")
	require.Contains(t, stdout, "2026-01-15")
}
