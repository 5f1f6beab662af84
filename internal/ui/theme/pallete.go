package theme

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

var theme = catppuccin.Mocha

func Pink() lipgloss.Color     { return lipgloss.Color(theme.Pink().Hex) }
func Mauve() lipgloss.Color    { return lipgloss.Color(theme.Mauve().Hex) }
func Red() lipgloss.Color      { return lipgloss.Color(theme.Red().Hex) }
func Peach() lipgloss.Color    { return lipgloss.Color(theme.Peach().Hex) }
func Yellow() lipgloss.Color   { return lipgloss.Color(theme.Yellow().Hex) }
func Green() lipgloss.Color    { return lipgloss.Color(theme.Green().Hex) }
func Teal() lipgloss.Color     { return lipgloss.Color(theme.Teal().Hex) }
func Sky() lipgloss.Color      { return lipgloss.Color(theme.Sky().Hex) }
func Blue() lipgloss.Color     { return lipgloss.Color(theme.Blue().Hex) }
func Text() lipgloss.Color     { return lipgloss.Color(theme.Text().Hex) }
func Subtext1() lipgloss.Color { return lipgloss.Color(theme.Subtext1().Hex) }
func Overlay0() lipgloss.Color { return lipgloss.Color(theme.Overlay0().Hex) }
func Surface0() lipgloss.Color { return lipgloss.Color(theme.Surface0().Hex) }
func Surface2() lipgloss.Color { return lipgloss.Color(theme.Surface2().Hex) }
func Mantle() lipgloss.Color   { return lipgloss.Color(theme.Mantle().Hex) }

// TypeColor gives each field type its own hue in the tree.
func TypeColor(t string) lipgloss.Color {
	switch t {
	case "String":
		return Green()
	case "Number":
		return Peach()
	case "Boolean":
		return Mauve()
	case "Nested":
		return Blue()
	case "Array":
		return Teal()
	}
	return Red()
}
