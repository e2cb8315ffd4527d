package catalog

import (
	"fmt"
	"strings"
)

// validate performs all structural checks on the seed data. Returns a
// combined error describing all problems found, or nil if valid.
func validate(categories []Category, questions []Question) error {
	var errs []string

	if len(categories) != len(AllCategoryIDs()) {
		errs = append(errs, fmt.Sprintf("expected %d categories, got %d", len(AllCategoryIDs()), len(categories)))
	}

	catSet := make(map[CategoryID]bool, len(categories))
	for _, cat := range categories {
		if catSet[cat.ID] {
			errs = append(errs, fmt.Sprintf("duplicate category ID: %q", cat.ID))
		}
		catSet[cat.ID] = true
		if cat.Name == "" || cat.Tenet == "" {
			errs = append(errs, fmt.Sprintf("category %q missing name or tenet", cat.ID))
		}
	}

	idSet := make(map[string]bool, len(questions))
	perCategory := make(map[CategoryID]int)
	for _, q := range questions {
		if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		idSet[q.ID] = true

		if !catSet[q.Category] {
			errs = append(errs, fmt.Sprintf("question %q references nonexistent category %q", q.ID, q.Category))
		}
		perCategory[q.Category]++

		if q.Position < 1 || q.Position > QuestionsPerCategory {
			errs = append(errs, fmt.Sprintf("question %q has position %d, want 1..%d", q.ID, q.Position, QuestionsPerCategory))
		}
		if q.Prompt == "" {
			errs = append(errs, fmt.Sprintf("question %q has an empty prompt", q.ID))
		}

		// Each question must offer risk values 0, 1 and 2 exactly once.
		seen := make(map[int]bool, OptionsPerQuestion)
		for _, opt := range q.Options {
			if opt.Label == "" {
				errs = append(errs, fmt.Sprintf("question %q has an option with an empty label", q.ID))
			}
			if opt.Risk < 0 || opt.Risk > MaxRisk {
				errs = append(errs, fmt.Sprintf("question %q has out-of-range risk value %d", q.ID, opt.Risk))
				continue
			}
			if seen[opt.Risk] {
				errs = append(errs, fmt.Sprintf("question %q repeats risk value %d", q.ID, opt.Risk))
			}
			seen[opt.Risk] = true
		}
		if len(seen) != OptionsPerQuestion {
			errs = append(errs, fmt.Sprintf("question %q does not cover risk values 0..%d", q.ID, MaxRisk))
		}
	}

	for _, cat := range categories {
		if n := perCategory[cat.ID]; n != QuestionsPerCategory {
			errs = append(errs, fmt.Sprintf("category %q has %d questions, want %d", cat.ID, n, QuestionsPerCategory))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
