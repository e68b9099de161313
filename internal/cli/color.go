package cli

import (
	"github.com/Flyrell/hydromind/internal/entry"
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1E90FF"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ECC71"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CFCF"))
	silentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	textStyle    = lipgloss.NewStyle().Bold(true)
)

func Primary(text string) string { return primaryStyle.Render(text) }
func Success(text string) string { return successStyle.Render(text) }
func Error(text string) string   { return errorStyle.Render(text) }
func Warning(text string) string { return warningStyle.Render(text) }
func Info(text string) string    { return infoStyle.Render(text) }
func Silent(text string) string  { return silentStyle.Render(text) }
func Text(text string) string    { return textStyle.Render(text) }

var drinkColors = map[entry.DrinkType]lipgloss.Color{
	entry.Water:     lipgloss.Color("#1E90FF"),
	entry.Tea:       lipgloss.Color("#3CB371"),
	entry.Coffee:    lipgloss.Color("#A0522D"),
	entry.Juice:     lipgloss.Color("#FFA500"),
	entry.Sparkling: lipgloss.Color("#00CFCF"),
	entry.Milk:      lipgloss.Color("#F5F5F5"),
}

// Drink renders the drink label in its own color.
func Drink(d entry.DrinkType) string {
	c, ok := drinkColors[d]
	if !ok {
		return d.String()
	}
	return lipgloss.NewStyle().Foreground(c).Render(d.String())
}
