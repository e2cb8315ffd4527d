package assessment

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/riskcheck/internal/catalog"
	"github.com/abhisek/riskcheck/internal/router"
	"github.com/abhisek/riskcheck/internal/screens/results"
)

func enterKey() tea.Msg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

// begin drives the screen past the intro step.
func begin(t *testing.T, a *AssessmentScreen) *AssessmentScreen {
	t.Helper()
	updated, _ := a.Update(enterKey())
	s, ok := updated.(*AssessmentScreen)
	if !ok {
		t.Fatalf("screen type = %T", updated)
	}
	if s.phase != phaseQuestion {
		t.Fatal("expected question phase after intro Enter")
	}
	return s
}

// chooseCurrent answers the current question with the top option and
// feeds the resulting message back, returning any follow-up command.
func chooseCurrent(t *testing.T, a *AssessmentScreen) tea.Cmd {
	t.Helper()
	updated, cmd := a.Update(enterKey())
	if cmd == nil {
		t.Fatal("expected a command from picker Enter")
	}
	msg := cmd()
	chosen, ok := msg.(answerChosenMsg)
	if !ok {
		t.Fatalf("msg type = %T, want answerChosenMsg", msg)
	}
	_, followUp := updated.(*AssessmentScreen).Update(chosen)
	return followUp
}

func TestIntroView(t *testing.T) {
	a := New()
	view := a.View(100, 30)
	if !strings.Contains(view, "Before we start") {
		t.Error("expected intro content")
	}
	if answered, total := a.Progress(); answered != 0 || total != 0 {
		t.Errorf("intro Progress() = (%d, %d), want (0, 0)", answered, total)
	}
}

func TestBeginCreatesSession(t *testing.T) {
	a := begin(t, New())
	if a.sess == nil {
		t.Fatal("expected a session")
	}
	if _, total := a.Progress(); total != catalog.NumQuestions() {
		t.Errorf("total = %d, want %d", total, catalog.NumQuestions())
	}
	view := a.View(100, 30)
	if !strings.Contains(view, "Question 1 of 8") {
		t.Error("expected first question counter in view")
	}
}

func TestAnswerAdvances(t *testing.T) {
	a := begin(t, New())

	if cmd := chooseCurrent(t, a); cmd != nil {
		t.Error("expected no follow-up command mid-assessment")
	}
	if a.sess.Index() != 1 {
		t.Errorf("index = %d, want 1", a.sess.Index())
	}
	if answered, _ := a.Progress(); answered != 1 {
		t.Errorf("answered = %d, want 1", answered)
	}
}

func TestRightBlockedOnUnanswered(t *testing.T) {
	a := begin(t, New())

	a.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if a.sess.Index() != 0 {
		t.Errorf("index = %d, want 0 (right past unanswered question)", a.sess.Index())
	}
}

func TestBackNavigationKeepsChoice(t *testing.T) {
	a := begin(t, New())
	chooseCurrent(t, a)

	a.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if a.sess.Index() != 0 {
		t.Fatalf("index = %d, want 0", a.sess.Index())
	}
	if a.picker.Chosen != 0 {
		t.Errorf("picker chosen = %d, want seeded 0", a.picker.Chosen)
	}
}

func TestFullRunPushesResults(t *testing.T) {
	a := begin(t, New())

	var lastCmd tea.Cmd
	for i := 0; i < catalog.NumQuestions(); i++ {
		lastCmd = chooseCurrent(t, a)
	}

	if lastCmd == nil {
		t.Fatal("expected a command after the final answer")
	}
	msg := lastCmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg type = %T, want router.PushScreenMsg", msg)
	}
	if _, ok := push.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("pushed screen type = %T, want *results.ResultsScreen", push.Screen)
	}
	if a.sess.Result() == nil {
		t.Error("expected a memoized result on the session")
	}
}

// Confirming an option on a finished session shows an error view; the
// next key press dismisses it instead of locking the screen.
func TestErrorViewDismissedByKey(t *testing.T) {
	a := begin(t, New())
	for i := 0; i < catalog.NumQuestions(); i++ {
		chooseCurrent(t, a)
	}

	chooseCurrent(t, a)
	if a.errMsg == "" {
		t.Fatal("expected an error answering a finished session")
	}
	if view := a.View(100, 30); !strings.Contains(view, "Error:") {
		t.Fatal("expected the error view")
	}

	a.Update(enterKey())
	if a.errMsg != "" {
		t.Errorf("errMsg = %q, want cleared after a key press", a.errMsg)
	}
	if view := a.View(100, 30); strings.Contains(view, "Error:") {
		t.Error("error view still shown after a key press")
	}
}
