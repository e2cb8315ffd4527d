// Package catalog holds the fixed assessment question set: four
// categories of two questions each, seeded as static data and indexed
// for lookup. The set never changes at runtime.
package catalog

import "fmt"

// catalog holds the question set with precomputed indices.
type catalog struct {
	categories   []Category
	questions    []Question
	categoryByID map[CategoryID]*Category
	questionByID map[string]*Question
	byCategory   map[CategoryID][]Question
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *catalog

// buildCatalog constructs the indexed catalog from seed data. It panics
// on structurally invalid seed data since that is a programming error,
// not a runtime condition.
func buildCatalog(categories []Category, questions []Question) *catalog {
	cat := &catalog{
		categories:   categories,
		questions:    questions,
		categoryByID: make(map[CategoryID]*Category, len(categories)),
		questionByID: make(map[string]*Question, len(questions)),
		byCategory:   make(map[CategoryID][]Question),
	}

	for i := range cat.categories {
		cat.categoryByID[cat.categories[i].ID] = &cat.categories[i]
	}
	for i := range cat.questions {
		q := &cat.questions[i]
		cat.questionByID[q.ID] = q
		cat.byCategory[q.Category] = append(cat.byCategory[q.Category], *q)
	}

	if err := validate(categories, questions); err != nil {
		panic(fmt.Sprintf("catalog: invalid seed data: %v", err))
	}

	return cat
}

// Categories returns all categories in display order.
func Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Questions returns all questions in display order (category order,
// then position).
func Questions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// NumQuestions is the total number of questions in the assessment.
func NumQuestions() int {
	return len(c.questions)
}

// CategoryByID returns the category with the given ID.
func CategoryByID(id CategoryID) (Category, error) {
	cat, ok := c.categoryByID[id]
	if !ok {
		return Category{}, fmt.Errorf("unknown category %q", id)
	}
	return *cat, nil
}

// QuestionByID returns the question with the given ID.
func QuestionByID(id string) (Question, error) {
	q, ok := c.questionByID[id]
	if !ok {
		return Question{}, fmt.Errorf("unknown question %q", id)
	}
	return *q, nil
}

// QuestionsFor returns the questions belonging to a category, ordered
// by position.
func QuestionsFor(id CategoryID) []Question {
	qs := c.byCategory[id]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}
