package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/apptitude/internal/ui/components"
	"github.com/abhisek/apptitude/internal/ui/theme"
)

// Block-letter title.
const arcadeTitleFull = ` █████╗ ██████╗ ██████╗ ████████╗██╗████████╗██╗   ██╗██████╗ ███████╗
██╔══██╗██╔══██╗██╔══██╗╚══██╔══╝██║╚══██╔══╝██║   ██║██╔══██╗██╔════╝
███████║██████╔╝██████╔╝   ██║   ██║   ██║   ██║   ██║██║  ██║█████╗
██╔══██║██╔═══╝ ██╔═══╝    ██║   ██║   ██║   ██║   ██║██║  ██║██╔══╝
██║  ██║██║     ██║        ██║   ██║   ██║   ╚██████╔╝██████╔╝███████╗
╚═╝  ╚═╝╚═╝     ╚═╝        ╚═╝   ╚═╝   ╚═╝    ╚═════╝ ╚═════╝ ╚══════╝`

const arcadeTitleCompact = "A · P · P · T · I · T · U · D · E"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(arcadeTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(arcadeTitleFull))
}

// renderTagline renders the subtitle under the banner.
func renderTagline(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.ArcadeCyan).
		Width(cw).
		Align(lipgloss.Center).
		Render("MENTAL MATH · 5 QUESTIONS · PICK YOUR LEVEL")
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// renderArcadeMenu renders each menu item as a fixed-width button, or as
// plain lines when the terminal is too small for bordered buttons.
func renderArcadeMenu(items []string, selected int, cw int, compact bool) string {
	if compact {
		return renderArcadeMenuCompact(items, selected, cw)
	}

	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.ArcadeButton(label, i == selected, buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMascotBox renders the mascot centered at content width.
func renderMascotBox(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot())
}
