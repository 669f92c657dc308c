package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// NoColor returns true if colored output should be disabled.
// Respects the NO_COLOR environment variable (https://no-color.org/).
func NoColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

// Color definitions for the styles below.
var (
	ColorWarning = lipgloss.Color("#F39C12") // orange
	ColorAccent  = lipgloss.Color("#9B59B6") // purple
)

// Style presets used by the preview and summary renderers.
var (
	// StyleTitle is for section headers.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	// StyleWarning is for the irreversibility warning and dry-run banner.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
)

// plainStyles returns styles without color for NO_COLOR mode.
func plainStyles() *log.Styles {
	// charmbracelet/log already strips styling when rendering to a
	// non-TTY; defaults are enough for the logger configuration.
	return log.DefaultStyles()
}
