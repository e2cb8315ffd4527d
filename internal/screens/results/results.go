// Package results renders a finished assessment: overall risk badge,
// radar chart, per-category bars and the recommendation list, plus
// report export.
package results

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/riskcheck/internal/report"
	"github.com/abhisek/riskcheck/internal/router"
	"github.com/abhisek/riskcheck/internal/screen"
	"github.com/abhisek/riskcheck/internal/scoring"
	"github.com/abhisek/riskcheck/internal/ui/components"
	"github.com/abhisek/riskcheck/internal/ui/layout"
	"github.com/abhisek/riskcheck/internal/ui/theme"
)

// reportSavedMsg is sent when the report file write completes.
type reportSavedMsg struct {
	Path string
	Err  error
}

// ResultsScreen displays the scored assessment.
type ResultsScreen struct {
	meta      report.Meta
	res       *scoring.Result
	restart   func() screen.Screen
	savedPath string
	saveErr   error
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.EscHandler = (*ResultsScreen)(nil)

// New creates a ResultsScreen. restart produces a fresh assessment
// screen for the "new assessment" action.
func New(meta report.Meta, res *scoring.Result, restart func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		meta:    meta,
		res:     res,
		restart: restart,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

// HandlesEsc claims the Esc key: leaving results goes straight home,
// never back onto the finished assessment.
func (r *ResultsScreen) HandlesEsc() bool {
	return true
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "S", Description: "Save report"},
		{Key: "N", Description: "New assessment"},
		{Key: "Esc", Description: "Home"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportSavedMsg:
		r.savedPath = msg.Path
		r.saveErr = msg.Err
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			return r, r.saveReport()
		case "n":
			return r, r.newAssessment()
		case "enter", "esc":
			return r, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return r, nil
}

// saveReport writes the JSON report into the working directory.
func (r *ResultsScreen) saveReport() tea.Cmd {
	meta, res := r.meta, r.res
	return func() tea.Msg {
		out, err := report.JSON(meta, res)
		if err != nil {
			return reportSavedMsg{Err: err}
		}
		short := meta.SessionID
		if len(short) > 8 {
			short = short[:8]
		}
		path := fmt.Sprintf("riskcheck-report-%s.json", short)
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return reportSavedMsg{Err: err}
		}
		return reportSavedMsg{Path: path}
	}
}

// newAssessment unwinds to home and pushes a fresh assessment screen.
func (r *ResultsScreen) newAssessment() tea.Cmd {
	restart := r.restart
	return tea.Sequence(
		func() tea.Msg { return router.PopToRootMsg{} },
		func() tea.Msg { return router.PushScreenMsg{Screen: restart()} },
	)
}

func (r *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	// Overall badge.
	badge := theme.RiskBadge(r.res.OverallLevel).Render(
		fmt.Sprintf("%s RISK", r.res.OverallLevel.DisplayName()))
	scoreLine := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Overall score %d/%d", r.res.Overall, scoring.MaxOverall))

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, badge))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, scoreLine))
	b.WriteString("\n\n")

	// Radar beside category bars. The radar plots performance
	// (inverted risk) so a healthy team fills the chart.
	var axes [4]components.RadarAxis
	for i, cs := range r.res.Categories {
		axes[i] = components.RadarAxis{
			Label: cs.Tenet,
			Value: 1 - cs.Percent(),
			Level: cs.Level,
		}
	}
	radar := components.NewRadar(axes, 4).View()

	barWidth := 34
	var barRows []string
	for _, cs := range r.res.Categories {
		bar := components.ProgressBar{
			Percent:   cs.Percent(),
			Width:     barWidth,
			FillColor: theme.RiskColor(cs.Level),
		}
		label := lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("%-12s", cs.Tenet))
		level := theme.RiskText(cs.Level).Render(
			fmt.Sprintf(" %d/%d %s", cs.Score, cs.Max, cs.Level.DisplayName()))
		barRows = append(barRows, label+bar.View()+level)
	}
	bars := strings.Join(barRows, "\n\n")

	middle := lipgloss.JoinHorizontal(lipgloss.Center, radar, "      ", bars)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, middle))
	b.WriteString("\n\n")

	// Recommendations (titles; details live in the saved report).
	if len(r.res.Recommendations) > 0 {
		var recRows []string
		recRows = append(recRows,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Recommendations"))
		for i, rec := range r.res.Recommendations {
			recRows = append(recRows, lipgloss.NewStyle().Foreground(theme.Text).Render(
				fmt.Sprintf("%d. %s", i+1, rec.Title)))
		}
		if r.res.PriorityNote != "" {
			recRows = append(recRows, "", theme.Hint.Width(70).Render(r.res.PriorityNote))
		}
		block := strings.Join(recRows, "\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
		b.WriteString("\n")
	}

	// Save status.
	switch {
	case r.saveErr != nil:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.RiskHigh).Render("Save failed: "+r.saveErr.Error())))
	case r.savedPath != "":
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.RiskLow).Render("Report saved to "+r.savedPath)))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}
