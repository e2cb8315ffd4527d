// Package assessment implements the interactive question flow: an
// intro step, one question per page with back/forward navigation, and
// the hand-off to the results screen once every answer is in.
package assessment

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/riskcheck/internal/assessment"
	"github.com/abhisek/riskcheck/internal/catalog"
	"github.com/abhisek/riskcheck/internal/report"
	"github.com/abhisek/riskcheck/internal/router"
	"github.com/abhisek/riskcheck/internal/screen"
	"github.com/abhisek/riskcheck/internal/screens/results"
	"github.com/abhisek/riskcheck/internal/ui/components"
	"github.com/abhisek/riskcheck/internal/ui/layout"
	"github.com/abhisek/riskcheck/internal/ui/theme"
)

type phase int

const (
	phaseIntro phase = iota
	phaseQuestion
)

// answerChosenMsg is sent when the respondent confirms an option.
type answerChosenMsg struct {
	Index int
}

// AssessmentScreen drives one assessment session.
type AssessmentScreen struct {
	phase  phase
	input  components.TextInput
	sess   *assessment.Session
	picker components.OptionPicker
	errMsg string
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.ProgressProvider = (*AssessmentScreen)(nil)

// New creates a new AssessmentScreen at the intro step.
func New() *AssessmentScreen {
	return &AssessmentScreen{
		phase: phaseIntro,
		input: components.NewTextInput("Organization or team (optional)", 40),
	}
}

func (a *AssessmentScreen) Init() tea.Cmd {
	return a.input.Init()
}

func (a *AssessmentScreen) Title() string {
	return "Assessment"
}

// Progress feeds the header counter; zero total hides it on the intro.
func (a *AssessmentScreen) Progress() (int, int) {
	if a.sess == nil {
		return 0, 0
	}
	return a.sess.AnsweredCount(), a.sess.Total()
}

func (a *AssessmentScreen) KeyHints() []layout.KeyHint {
	if a.phase == phaseIntro {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Begin"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Question"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (a *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerChosenMsg:
		return a.handleAnswer(msg.Index)

	case tea.KeyMsg:
		// Any key dismisses the error view and returns to the flow.
		if a.errMsg != "" {
			a.errMsg = ""
			return a, nil
		}

		if a.phase == phaseIntro {
			if msg.String() == "enter" {
				return a.beginQuestions()
			}
			var cmd tea.Cmd
			a.input, cmd = a.input.Update(msg)
			return a, cmd
		}

		switch msg.String() {
		case "left":
			if a.sess.Prev() {
				a.loadPicker()
			}
			return a, nil
		case "right":
			if a.sess.Next() {
				a.loadPicker()
			}
			return a, nil
		}

		var cmd tea.Cmd
		a.picker, cmd = a.picker.Update(msg)
		return a, cmd
	}

	if a.phase == phaseIntro {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

// beginQuestions creates the session and shows the first question.
func (a *AssessmentScreen) beginQuestions() (screen.Screen, tea.Cmd) {
	a.sess = assessment.New(strings.TrimSpace(a.input.Value()))
	a.phase = phaseQuestion
	a.loadPicker()
	return a, nil
}

// loadPicker rebuilds the option picker for the session's current
// question, seeding any previous choice.
func (a *AssessmentScreen) loadPicker() {
	q := a.sess.Current()

	previous := -1
	if idx, ok := a.sess.Selected(); ok {
		previous = idx
	}

	options := make([]string, len(q.Options))
	for i, opt := range q.Options {
		options[i] = opt.Label
	}

	a.picker = components.NewOptionPicker(q.Prompt, options, previous, func(i int) tea.Cmd {
		return func() tea.Msg {
			return answerChosenMsg{Index: i}
		}
	})
}

// handleAnswer records the choice, then either advances or finishes.
func (a *AssessmentScreen) handleAnswer(optionIndex int) (screen.Screen, tea.Cmd) {
	if err := a.sess.SetAnswer(optionIndex); err != nil {
		a.errMsg = err.Error()
		return a, nil
	}

	if a.sess.Next() {
		a.loadPicker()
		return a, nil
	}

	if !a.sess.Complete() {
		// Still stuck on the last page with earlier gaps; should not
		// happen since Next blocks on unanswered questions.
		a.loadPicker()
		return a, nil
	}

	res, err := a.sess.Finish()
	if err != nil {
		a.errMsg = err.Error()
		return a, nil
	}

	meta := report.Meta{
		SessionID:   a.sess.ID,
		Org:         a.sess.Org,
		GeneratedAt: time.Now(),
	}
	resultsScreen := results.New(meta, res, func() screen.Screen { return New() })
	return a, func() tea.Msg {
		return router.PushScreenMsg{Screen: resultsScreen}
	}
}

func (a *AssessmentScreen) View(width, height int) string {
	if a.errMsg != "" {
		errStyle := lipgloss.NewStyle().Foreground(theme.RiskHigh).Bold(true)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			errStyle.Render("Error: "+a.errMsg))
	}
	if a.phase == phaseIntro {
		return a.viewIntro(width, height)
	}
	return a.viewQuestion(width, height)
}

func (a *AssessmentScreen) viewIntro(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Before we start")
	blurb := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(50).
		Render("The report can carry your organization or team name. Leave it blank to keep the assessment anonymous.")

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		blurb,
		"",
		a.input.View(),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (a *AssessmentScreen) viewQuestion(width, height int) string {
	q := a.sess.Current()
	cat, _ := catalog.CategoryByID(q.Category)

	cardWidth := width - 10
	if cardWidth > 88 {
		cardWidth = 88
	}

	header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(cat.Name) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("   Question %d of %d", a.sess.Index()+1, a.sess.Total()))

	bar := components.NewProgressBar("", a.sess.Progress(), false, cardWidth)

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		a.picker.View(cardWidth),
		"",
		bar.View(),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
