package scoring

// RiskLevel is the three-valued classification assigned to an overall
// or per-category score.
type RiskLevel string

const (
	LevelLow    RiskLevel = "low"
	LevelMedium RiskLevel = "medium"
	LevelHigh   RiskLevel = "high"
)

// AllLevels returns the levels in ascending risk order.
func AllLevels() []RiskLevel {
	return []RiskLevel{LevelLow, LevelMedium, LevelHigh}
}

// DisplayName returns the uppercase label used on the results screen
// and in reports.
func (l RiskLevel) DisplayName() string {
	switch l {
	case LevelLow:
		return "LOW"
	case LevelMedium:
		return "MEDIUM"
	case LevelHigh:
		return "HIGH"
	default:
		return string(l)
	}
}

// Rank returns the level's position in ascending risk order, used for
// ordering comparisons. Unknown levels rank below low.
func (l RiskLevel) Rank() int {
	switch l {
	case LevelLow:
		return 0
	case LevelMedium:
		return 1
	case LevelHigh:
		return 2
	default:
		return -1
	}
}

// Classification thresholds, expressed as a percentage of the maximum
// possible score. A score at or below lowMaxPercent of max classifies
// low; at or below mediumMaxPercent classifies medium; anything above
// classifies high. The same shape applies to the overall score (max 16)
// and to category scores (max 4).
const (
	lowMaxPercent    = 25
	mediumMaxPercent = 60
)

// Classify maps a score in [0, max] onto a risk level using the fixed
// percentage thresholds.
func Classify(score, max int) RiskLevel {
	pct := score * 100 / max
	switch {
	case pct <= lowMaxPercent:
		return LevelLow
	case pct <= mediumMaxPercent:
		return LevelMedium
	default:
		return LevelHigh
	}
}
