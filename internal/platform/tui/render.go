package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/skyflap/skyflap/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorSky:           lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorCream:         lipgloss.NewStyle().Foreground(lipgloss.Color("223")),
	core.ColorPink:          lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Theme asset lookup tables. Stage themes name their assets by identifier;
// unknown identifiers fall back to a neutral look so a custom config with
// new theme names still renders.

// backgroundColors maps a theme background identifier to the sky color.
var backgroundColors = map[string]core.Color{
	"sky":   core.ColorSky,
	"cream": core.ColorCream,
	"pink":  core.ColorPink,
}

// sceneryRunes maps a theme scenery identifier to its decoration rune.
var sceneryRunes = map[string]rune{
	"grass":       '"',
	"flowers":     '*',
	"butterflies": 'x',
}

// sceneryColors maps a theme scenery identifier to its color.
var sceneryColors = map[string]core.Color{
	"grass":       core.ColorGreen,
	"flowers":     core.ColorBrightMagenta,
	"butterflies": core.ColorBrightYellow,
}

// skinColors maps an actor skin identifier to its color.
var skinColors = map[string]core.Color{
	"blue":  core.ColorBrightBlue,
	"green": core.ColorBrightGreen,
	"beige": core.ColorYellow,
}

func backgroundColor(id string) core.Color {
	if c, ok := backgroundColors[id]; ok {
		return c
	}
	return core.ColorDefault
}

func sceneryLook(id string) (rune, core.Color) {
	r, ok := sceneryRunes[id]
	if !ok {
		return '.', core.ColorGray
	}
	return r, sceneryColors[id]
}

func skinColor(id string) core.Color {
	if c, ok := skinColors[id]; ok {
		return c
	}
	return core.ColorYellow
}
