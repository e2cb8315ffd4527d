// Package categories implements a read-only browser of the assessment
// categories and their questions.
package categories

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/riskcheck/internal/catalog"
	"github.com/abhisek/riskcheck/internal/screen"
	"github.com/abhisek/riskcheck/internal/ui/layout"
	"github.com/abhisek/riskcheck/internal/ui/theme"
)

// CategoriesScreen pages through the four categories.
type CategoriesScreen struct {
	cats  []catalog.Category
	index int
}

var _ screen.Screen = (*CategoriesScreen)(nil)
var _ screen.KeyHintProvider = (*CategoriesScreen)(nil)

// New creates a new CategoriesScreen.
func New() *CategoriesScreen {
	return &CategoriesScreen{cats: catalog.Categories()}
}

func (c *CategoriesScreen) Init() tea.Cmd {
	return nil
}

func (c *CategoriesScreen) Title() string {
	return "Categories"
}

func (c *CategoriesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Category"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *CategoriesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left", "h":
			if c.index > 0 {
				c.index--
			}
		case "right", "l":
			if c.index < len(c.cats)-1 {
				c.index++
			}
		}
	}
	return c, nil
}

func (c *CategoriesScreen) View(width, height int) string {
	cat := c.cats[c.index]

	var b strings.Builder

	counter := fmt.Sprintf("Category %d of %d", c.index+1, len(c.cats))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(counter))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(cat.Name))
	b.WriteString("\n\n")

	cardWidth := width - 8
	if cardWidth > 90 {
		cardWidth = 90
	}

	desc := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(cardWidth).
		Render(cat.Description)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, desc))
	b.WriteString("\n\n")

	for i, q := range catalog.QuestionsFor(cat.ID) {
		label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(fmt.Sprintf("Question %d", i+1))
		prompt := lipgloss.NewStyle().Foreground(theme.TextDim).
			Width(cardWidth).
			Render(q.Prompt)
		block := label + "\n" + prompt
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
		b.WriteString("\n\n")
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}
