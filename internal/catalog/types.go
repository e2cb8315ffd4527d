package catalog

// CategoryID identifies one of the four fixed assessment categories.
type CategoryID string

const (
	CategoryGovernance  CategoryID = "governance"
	CategoryTechnical   CategoryID = "technical"
	CategoryOperational CategoryID = "operational"
	CategoryPrivacy     CategoryID = "privacy"
)

// AllCategoryIDs returns the category IDs in display order.
func AllCategoryIDs() []CategoryID {
	return []CategoryID{
		CategoryGovernance,
		CategoryTechnical,
		CategoryOperational,
		CategoryPrivacy,
	}
}

// QuestionsPerCategory is the fixed number of questions in each category.
const QuestionsPerCategory = 2

// OptionsPerQuestion is the fixed number of answer options per question.
const OptionsPerQuestion = 3

// Category is one of the four fixed groupings of questions.
type Category struct {
	ID          CategoryID
	Name        string // full display name, e.g. "Governance & Oversight Controls"
	Tenet       string // short axis label for charts, e.g. "Governance"
	Description string
	Blurb       string // one-line summary shown next to chart axes
}

// Option is a single answer choice. Risk is the option's risk
// contribution: 0 (low), 1 (medium) or 2 (high).
type Option struct {
	Label string
	Risk  int
}

// Question belongs to exactly one category and carries a fixed prompt
// and exactly three options whose risk values are 0, 1 and 2.
type Question struct {
	ID       string
	Category CategoryID
	Position int // ordinal within the category, 1 or 2
	Prompt   string
	Options  [OptionsPerQuestion]Option
}

// MaxRisk is the highest risk value a single answer can contribute.
const MaxRisk = 2
