// Package style wraps lipgloss into small render functions for CLI output.
package style

import (
	"github.com/castlist-cli/castlist/color"
	"github.com/charmbracelet/lipgloss"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer applying the foreground color.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Tag renders s as a padded label, e.g. a track kind next to a title.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string {
		return New().Foreground(fg).Background(bg).Padding(0, 1).Render(s)
	}
}

// Title renders the catalog name heading.
var Title = func(s string) string {
	return New().Foreground(color.New("230")).Background(color.New("62")).Padding(0, 1).Render(s)
}
