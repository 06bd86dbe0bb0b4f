package term

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func colorString(t *testing.T, c lipgloss.TerminalColor) string {
	t.Helper()

	color, ok := c.(lipgloss.Color)
	require.True(t, ok, "expected lipgloss.Color, got %T", c)
	return string(color)
}
