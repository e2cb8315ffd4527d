package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/riskcheck/internal/catalog"
	"github.com/abhisek/riskcheck/internal/router"
	"github.com/abhisek/riskcheck/internal/screen"
	assessmentscreen "github.com/abhisek/riskcheck/internal/screens/assessment"
	"github.com/abhisek/riskcheck/internal/screens/categories"
	"github.com/abhisek/riskcheck/internal/ui/components"
	"github.com/abhisek/riskcheck/internal/ui/layout"
	"github.com/abhisek/riskcheck/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New() *HomeScreen {
	menu := components.NewMenu([]components.MenuItem{
		{
			Label: "Start assessment",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: assessmentscreen.New()}
				}
			},
		},
		{
			Label: "Browse categories",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: categories.New()}
				}
			},
		},
		{
			Label: "Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	})

	return &HomeScreen{menu: menu}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("How ready is your team for AI-assisted development?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("8 questions across 4 control categories, about 5 minutes."))
	b.WriteString("\n\n")

	// Category overview.
	var rows []string
	for _, cat := range catalog.Categories() {
		row := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(cat.Tenet) +
			"  " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(cat.Blurb)
		rows = append(rows, row)
	}
	overview := strings.Join(rows, "\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, overview))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}
