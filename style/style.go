// Package style provides a functional API for composing and applying lipgloss-based terminal styles.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vimeodl/vimeodl/color"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a stateless rendering function that applies the specified foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Standard text transformation helpers.
var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
)

// InfoPrefix renders the "[INFO]" marker that opens status lines.
var InfoPrefix = func() string {
	return New().Bold(true).Foreground(color.Cyan).Render("[INFO]")
}

// ErrorPrefix renders the "[ERROR]" marker that opens failure lines.
var ErrorPrefix = func() string {
	return New().Bold(true).Foreground(color.HiRed).Render("[ERROR]")
}
