package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/riskcheck/internal/scoring"
)

// Color palette — carried over from the product's web branding
var (
	Primary   = lipgloss.Color("#6B46C1") // Purple
	Secondary = lipgloss.Color("#3B82F6") // Blue
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	RiskLow    = lipgloss.Color("#10B981") // Emerald
	RiskMedium = lipgloss.Color("#F59E0B") // Amber
	RiskHigh   = lipgloss.Color("#EF4444") // Red
)

// riskColors maps each classification onto its display color. Screens
// look up colors here instead of branching on levels themselves.
var riskColors = map[scoring.RiskLevel]color.Color{
	scoring.LevelLow:    RiskLow,
	scoring.LevelMedium: RiskMedium,
	scoring.LevelHigh:   RiskHigh,
}

// riskIcons maps each classification onto its marker glyph.
var riskIcons = map[scoring.RiskLevel]string{
	scoring.LevelLow:    "●",
	scoring.LevelMedium: "◆",
	scoring.LevelHigh:   "▲",
}

// RiskColor returns the display color for a risk level.
func RiskColor(level scoring.RiskLevel) color.Color {
	if c, ok := riskColors[level]; ok {
		return c
	}
	return TextDim
}

// RiskIcon returns the marker glyph for a risk level.
func RiskIcon(level scoring.RiskLevel) string {
	if icon, ok := riskIcons[level]; ok {
		return icon
	}
	return "·"
}

// RiskBadge returns the filled badge style used for the overall
// classification banner.
func RiskBadge(level scoring.RiskLevel) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(RiskColor(level)).
		Foreground(Text).
		Bold(true).
		Padding(0, 2)
}

// RiskText returns the foreground style for level labels.
func RiskText(level scoring.RiskLevel) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(RiskColor(level)).Bold(true)
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)
