// Package home implements the level-select menu shown at startup.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/apptitude/internal/client"
	"github.com/abhisek/apptitude/internal/quiz"
	"github.com/abhisek/apptitude/internal/router"
	"github.com/abhisek/apptitude/internal/screen"
	sessionscreen "github.com/abhisek/apptitude/internal/screens/session"
	"github.com/abhisek/apptitude/internal/ui/components"
)

// HomeScreen is the level picker: one entry per difficulty plus exit.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// levelLabel names a difficulty for the menu.
func levelLabel(level int) string {
	switch level {
	case quiz.MinLevel:
		return fmt.Sprintf("LEVEL %d · EASIEST", level)
	case quiz.MaxLevel:
		return fmt.Sprintf("LEVEL %d · HARDEST", level)
	default:
		return fmt.Sprintf("LEVEL %d", level)
	}
}

// New creates the home screen. Picking a level starts a test against the
// question service reachable through c.
func New(c *client.Client) *HomeScreen {
	var labels []string
	var items []components.MenuItem

	for level := quiz.MinLevel; level <= quiz.MaxLevel; level++ {
		label := levelLabel(level)
		labels = append(labels, label)

		lvl := level
		items = append(items, components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: sessionscreen.New(c, lvl)}
				}
			},
		})
	}

	labels = append(labels, "EXIT GAME")
	items = append(items, components.MenuItem{
		Label: "EXIT GAME",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: labels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Digit keys jump straight into a test at that level.
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && key[0] >= '1' && key[0] <= '5' {
			idx := int(key[0] - '1')
			h.menu.Selected = idx
			if action := h.menu.Items[idx].Action; action != nil {
				return h, action()
			}
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height by
	// adding back header (3) + footer (3) + frame gaps.
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(cw))
	}
	sections = append(sections, renderTagline(cw))
	sections = append(sections, renderArcadeMenu(h.menuLabels, h.menu.Selected, cw, compact))

	content := strings.Join(sections, "\n\n")

	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
