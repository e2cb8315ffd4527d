package results

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/riskcheck/internal/report"
	"github.com/abhisek/riskcheck/internal/screen"
	"github.com/abhisek/riskcheck/internal/scoring"
)

func testResult(t *testing.T) *scoring.Result {
	t.Helper()
	res, err := scoring.Score(scoring.Answers{
		"governance-1": 2, "governance-2": 2,
		"technical-1": 1, "technical-2": 1,
		"operational-1": 0, "operational-2": 1,
		"privacy-1": 0, "privacy-2": 0,
	})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	return res
}

func testScreen(t *testing.T) *ResultsScreen {
	t.Helper()
	meta := report.Meta{
		SessionID:   "11112222-3333-4444-5555-666677778888",
		Org:         "Acme",
		GeneratedAt: time.Now(),
	}
	return New(meta, testResult(t), func() screen.Screen { return nil })
}

func TestResultsScreen_Title(t *testing.T) {
	s := testScreen(t)
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestResultsScreen_Display(t *testing.T) {
	s := testScreen(t)
	view := s.View(100, 34)
	if view == "" {
		t.Fatal("expected non-empty results view")
	}
	for _, want := range []string{"MEDIUM RISK", "7/16", "Governance", "Recommendations"} {
		if !strings.Contains(view, want) {
			t.Errorf("results view missing %q", want)
		}
	}
}

func TestResultsScreen_Navigation(t *testing.T) {
	s := testScreen(t)
	if !s.HandlesEsc() {
		t.Error("results must claim Esc so the app delivers it here")
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop to root)")
	}

	_, cmd = s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if cmd == nil {
		t.Error("expected a command on N (new assessment)")
	}
}

func TestResultsScreen_SaveReport(t *testing.T) {
	t.Chdir(t.TempDir())

	s := testScreen(t)
	cmd := s.saveReport()
	msg := cmd()

	saved, ok := msg.(reportSavedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want reportSavedMsg", msg)
	}
	if saved.Err != nil {
		t.Fatalf("save failed: %v", saved.Err)
	}
	if _, err := os.Stat(saved.Path); err != nil {
		t.Errorf("report file missing: %v", err)
	}

	updated, _ := s.Update(saved)
	view := updated.View(100, 34)
	if !strings.Contains(view, saved.Path) {
		t.Error("expected saved path in view")
	}
}

func TestResultsScreen_KeyHints(t *testing.T) {
	s := testScreen(t)
	if len(s.KeyHints()) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(s.KeyHints()))
	}
}
