package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/apptitude/internal/ui/theme"
)

const mascotArt = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ±×÷ │
└─────┘`

// RenderMascot returns the styled mascot art.
func RenderMascot() string {
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render(mascotArt)
}
