package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

// FormatError styles an error for stderr.
func FormatError(err error) string {
	return errorStyle.Render(strings.TrimRight(err.Error(), "\n"))
}
