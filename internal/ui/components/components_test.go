package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/riskcheck/internal/scoring"
)

func TestOptionPickerNavigation(t *testing.T) {
	p := NewOptionPicker("Prompt?", []string{"a", "b", "c"}, -1, nil)
	if p.Cursor != 0 || p.Chosen != -1 {
		t.Fatalf("initial state cursor=%d chosen=%d", p.Cursor, p.Chosen)
	}

	p, _ = p.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if p.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", p.Cursor)
	}

	p, _ = p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if p.Chosen != 1 {
		t.Errorf("chosen = %d, want 1", p.Chosen)
	}
}

func TestOptionPickerSeedsPreviousChoice(t *testing.T) {
	p := NewOptionPicker("Prompt?", []string{"a", "b", "c"}, 2, nil)
	if p.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", p.Cursor)
	}
	if p.Chosen != 2 {
		t.Errorf("chosen = %d, want 2", p.Chosen)
	}
	if !strings.Contains(p.View(60), "✓") {
		t.Error("expected chosen marker in view")
	}
}

func TestOptionPickerChooseCallback(t *testing.T) {
	called := -1
	p := NewOptionPicker("Prompt?", []string{"a", "b"}, -1, func(i int) tea.Cmd {
		called = i
		return nil
	})
	p, _ = p.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if called != 1 {
		t.Errorf("callback index = %d, want 1", called)
	}
}

func TestProgressBarBounds(t *testing.T) {
	for _, pct := range []float64{-0.5, 0, 0.5, 1, 1.5} {
		bar := NewProgressBar("Label", pct, true, 40)
		if bar.View() == "" {
			t.Errorf("empty view for percent %f", pct)
		}
	}
}

func TestRadarDimensions(t *testing.T) {
	axes := [4]RadarAxis{
		{Label: "Governance", Value: 1.0, Level: scoring.LevelLow},
		{Label: "Technical", Value: 0.5, Level: scoring.LevelMedium},
		{Label: "Operational", Value: 0.0, Level: scoring.LevelHigh},
		{Label: "Privacy", Value: 0.75, Level: scoring.LevelLow},
	}
	r := NewRadar(axes, 5)
	view := r.View()

	lines := strings.Split(view, "\n")
	// top label + 2*radius+1 chart rows + bottom label
	want := 1 + (2*5 + 1) + 1
	if len(lines) != want {
		t.Errorf("radar has %d lines, want %d", len(lines), want)
	}
	for _, label := range []string{"Governance", "Technical", "Operational", "Privacy"} {
		if !strings.Contains(view, label) {
			t.Errorf("radar view missing label %q", label)
		}
	}
}

func TestRadarClampsValues(t *testing.T) {
	axes := [4]RadarAxis{
		{Label: "A", Value: -1, Level: scoring.LevelHigh},
		{Label: "B", Value: 2, Level: scoring.LevelLow},
		{Label: "C", Value: 0.5, Level: scoring.LevelMedium},
		{Label: "D", Value: 0.5, Level: scoring.LevelMedium},
	}
	r := NewRadar(axes, 4)
	if r.View() == "" {
		t.Error("expected non-empty view for out-of-range values")
	}
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "first", Disabled: true},
		{Label: "second"},
		{Label: "third"},
	})
	if m.Selected != 1 {
		t.Errorf("initial selection = %d, want 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("selection = %d, want 2", m.Selected)
	}
}
