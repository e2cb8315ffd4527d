// Package scoring implements the assessment scoring engine: a pure
// function from a complete answer set to category scores, an overall
// risk classification and a selection of canned recommendations.
package scoring

import (
	"sort"

	"github.com/abhisek/riskcheck/internal/catalog"
)

// Answers maps question IDs to the chosen option's risk value (0..2).
type Answers map[string]int

// MaxOverall is the highest possible overall score (all answers at
// maximum risk).
const MaxOverall = 16

// MaxCategory is the highest possible score within one category.
const MaxCategory = catalog.QuestionsPerCategory * catalog.MaxRisk

// CategoryScore is the scored result for a single category.
type CategoryScore struct {
	Category catalog.CategoryID
	Name     string // full category name
	Tenet    string // short chart label
	Score    int    // sum of the category's answers, 0..4
	Max      int    // always MaxCategory; kept explicit for rendering
	Level    RiskLevel
}

// Percent returns the category's risk as a fraction of its maximum.
func (cs CategoryScore) Percent() float64 {
	return float64(cs.Score) / float64(cs.Max)
}

// Result is the complete output of the scoring engine for one answer
// set. It is a pure function of the input: scoring the same answers
// twice yields identical results.
type Result struct {
	Overall         int // sum of all answers, 0..16
	OverallLevel    RiskLevel
	Categories      []CategoryScore // catalog display order
	Recommendations []Recommendation
	PriorityNote    string // empty when OverallLevel is low
}

// Score validates the answer set and computes the full result. It
// returns a *ValidationError if any answer is missing, any value is
// outside 0..2, or any key names a question not in the catalog.
func Score(answers Answers) (*Result, error) {
	if err := validateAnswers(answers); err != nil {
		return nil, err
	}

	res := &Result{}
	for _, cat := range catalog.Categories() {
		cs := CategoryScore{
			Category: cat.ID,
			Name:     cat.Name,
			Tenet:    cat.Tenet,
			Max:      MaxCategory,
		}
		for _, q := range catalog.QuestionsFor(cat.ID) {
			cs.Score += answers[q.ID]
		}
		cs.Level = Classify(cs.Score, MaxCategory)
		res.Overall += cs.Score
		res.Categories = append(res.Categories, cs)
	}

	res.OverallLevel = Classify(res.Overall, MaxOverall)
	res.Recommendations = selectRecommendations(res.OverallLevel, res.Categories)
	res.PriorityNote = priorityNote(res.OverallLevel)
	return res, nil
}

// validateAnswers checks completeness and range before any scoring.
func validateAnswers(answers Answers) error {
	verr := &ValidationError{}

	for _, q := range catalog.Questions() {
		v, present := answers[q.ID]
		if !present {
			verr.Missing = append(verr.Missing, q.ID)
			continue
		}
		if v < 0 || v > catalog.MaxRisk {
			if verr.OutOfRange == nil {
				verr.OutOfRange = make(map[string]int)
			}
			verr.OutOfRange[q.ID] = v
		}
	}

	for id := range answers {
		if _, err := catalog.QuestionByID(id); err != nil {
			verr.Unknown = append(verr.Unknown, id)
		}
	}
	sort.Strings(verr.Unknown)

	if verr.ok() {
		return nil
	}
	return verr
}
