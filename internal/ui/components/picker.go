package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/riskcheck/internal/ui/theme"
)

// OptionPicker is a single-select list for one assessment question.
// Unlike a quiz choice there is no correct answer; the chosen index is
// kept so the respondent can navigate back and change it.
type OptionPicker struct {
	Prompt   string
	Options  []string
	Cursor   int
	Chosen   int // -1 until a choice is made
	OnChoose func(index int) tea.Cmd
}

// NewOptionPicker creates a picker. A previous choice (or -1) seeds
// both the cursor and the chosen marker.
func NewOptionPicker(prompt string, options []string, previous int, onChoose func(index int) tea.Cmd) OptionPicker {
	cursor := 0
	if previous >= 0 && previous < len(options) {
		cursor = previous
	}
	return OptionPicker{
		Prompt:   prompt,
		Options:  options,
		Cursor:   cursor,
		Chosen:   previous,
		OnChoose: onChoose,
	}
}

// Init returns nil.
func (p OptionPicker) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (p OptionPicker) Update(msg tea.Msg) (OptionPicker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Cursor > 0 {
			p.Cursor--
		}
	case "down", "j":
		if p.Cursor < len(p.Options)-1 {
			p.Cursor++
		}
	case "enter":
		p.Chosen = p.Cursor
		if p.OnChoose != nil {
			return p, p.OnChoose(p.Chosen)
		}
	}

	return p, nil
}

// View renders the prompt and options, wrapped to the given width.
func (p OptionPicker) View(width int) string {
	promptStyle := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width)
	s := promptStyle.Render(p.Prompt) + "\n\n"

	labels := []string{"A", "B", "C", "D"}

	for i, opt := range p.Options {
		prefix := "  "
		if i == p.Cursor {
			prefix = "▸ "
		}
		marker := " "
		if i == p.Chosen {
			marker = "✓"
		}

		line := fmt.Sprintf("%s%s) %s %s", prefix, labels[i], marker, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text).Width(width)
		switch {
		case i == p.Cursor:
			style = style.Foreground(theme.Primary).Bold(true)
		case i == p.Chosen:
			style = style.Foreground(theme.Secondary)
		}
		s += style.Render(line) + "\n"
	}

	return s
}
