package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/riskcheck/internal/catalog"
	"github.com/abhisek/riskcheck/internal/report"
	"github.com/abhisek/riskcheck/internal/router"
	"github.com/abhisek/riskcheck/internal/scoring"
	"github.com/abhisek/riskcheck/internal/screen"
	assessmentscreen "github.com/abhisek/riskcheck/internal/screens/assessment"
	"github.com/abhisek/riskcheck/internal/screens/home"
	"github.com/abhisek/riskcheck/internal/screens/results"
)

func scoredResult(t *testing.T) *scoring.Result {
	t.Helper()
	answers := scoring.Answers{}
	for _, q := range catalog.Questions() {
		answers[q.ID] = 1
	}
	res, err := scoring.Score(answers)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	return res
}

// appOnResults builds the stack the running app has after a finished
// assessment: home at the bottom, the assessment screen, results on top.
func appOnResults(t *testing.T) AppModel {
	t.Helper()
	m := AppModel{router: router.New(home.New()), width: 100, height: 40}
	m.router.Push(assessmentscreen.New())
	m.router.Push(results.New(report.Meta{SessionID: "test-session"}, scoredResult(t),
		func() screen.Screen { return assessmentscreen.New() }))
	return m
}

// step sends a message through the app and executes any resulting
// command, feeding produced messages back until none remain.
func step(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	for msg != nil {
		model, cmd := m.Update(msg)
		m = model.(AppModel)
		msg = nil
		if cmd != nil {
			msg = cmd()
		}
	}
	return m
}

func TestEscOnResultsReturnsHome(t *testing.T) {
	m := appOnResults(t)

	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})

	if m.router.Depth() != 1 {
		t.Fatalf("depth = %d, want 1 (results Esc must unwind to home)", m.router.Depth())
	}
	if title := m.router.Active().Title(); title != "Home" {
		t.Errorf("active screen = %q, want Home", title)
	}
}

func TestEscOnAssessmentPopsOne(t *testing.T) {
	m := AppModel{router: router.New(home.New()), width: 100, height: 40}
	m.router.Push(assessmentscreen.New())

	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})

	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1 (Esc pops screens without their own handler)", m.router.Depth())
	}
}

func TestEscOnHomeIsNoop(t *testing.T) {
	m := AppModel{router: router.New(home.New()), width: 100, height: 40}

	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})

	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}
