package scoring

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/riskcheck/internal/catalog"
)

// uniformAnswers builds a complete answer set with every value set to v.
func uniformAnswers(v int) Answers {
	a := make(Answers, catalog.NumQuestions())
	for _, q := range catalog.Questions() {
		a[q.ID] = v
	}
	return a
}

func TestScoreAllZero(t *testing.T) {
	res, err := Score(uniformAnswers(0))
	require.NoError(t, err)

	assert.Equal(t, 0, res.Overall)
	assert.Equal(t, LevelLow, res.OverallLevel)
	assert.Empty(t, res.Recommendations)
	assert.Empty(t, res.PriorityNote)
	for _, cs := range res.Categories {
		assert.Equal(t, 0, cs.Score)
		assert.Equal(t, LevelLow, cs.Level)
	}
}

func TestScoreAllMax(t *testing.T) {
	res, err := Score(uniformAnswers(2))
	require.NoError(t, err)

	assert.Equal(t, MaxOverall, res.Overall)
	assert.Equal(t, LevelHigh, res.OverallLevel)
	require.Len(t, res.Recommendations, MaxRecommendations)
	assert.NotEmpty(t, res.PriorityNote)

	// Ordered and non-empty: four category entries then the general one.
	for i, rec := range res.Recommendations {
		assert.NotEmpty(t, rec.Title, "recommendation %d has no title", i)
		assert.NotEmpty(t, rec.Detail, "recommendation %d has no detail", i)
	}
	last := res.Recommendations[len(res.Recommendations)-1]
	assert.Empty(t, last.Category, "general entry should come last")
}

func TestScoreSums(t *testing.T) {
	answers := Answers{
		"governance-1":  2,
		"governance-2":  1,
		"technical-1":   0,
		"technical-2":   2,
		"operational-1": 1,
		"operational-2": 1,
		"privacy-1":     0,
		"privacy-2":     0,
	}
	res, err := Score(answers)
	require.NoError(t, err)

	assert.Equal(t, 7, res.Overall)

	want := map[catalog.CategoryID]int{
		catalog.CategoryGovernance:  3,
		catalog.CategoryTechnical:   2,
		catalog.CategoryOperational: 2,
		catalog.CategoryPrivacy:     0,
	}
	require.Len(t, res.Categories, 4)
	for _, cs := range res.Categories {
		assert.Equal(t, want[cs.Category], cs.Score, "category %s", cs.Category)
		assert.GreaterOrEqual(t, cs.Score, 0)
		assert.LessOrEqual(t, cs.Score, MaxCategory)
	}
}

func TestOverallBoundaries(t *testing.T) {
	// Thresholds are 25% and 60% of the maximum of 16: low through 4,
	// medium through 9, high from 10.
	tests := []struct {
		overall int
		want    RiskLevel
	}{
		{0, LevelLow},
		{4, LevelLow},
		{5, LevelMedium},
		{9, LevelMedium},
		{10, LevelHigh},
		{16, LevelHigh},
	}
	for _, tt := range tests {
		if got := Classify(tt.overall, MaxOverall); got != tt.want {
			t.Errorf("Classify(%d, %d) = %s, want %s", tt.overall, MaxOverall, got, tt.want)
		}
	}
}

func TestCategoryBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{0, LevelLow},
		{1, LevelLow},
		{2, LevelMedium},
		{3, LevelHigh},
		{4, LevelHigh},
	}
	for _, tt := range tests {
		if got := Classify(tt.score, MaxCategory); got != tt.want {
			t.Errorf("Classify(%d, %d) = %s, want %s", tt.score, MaxCategory, got, tt.want)
		}
	}
}

// TestMonotonicity raises each answer one step at a time from a range
// of base sets and checks the classification never decreases.
func TestMonotonicity(t *testing.T) {
	for base := 0; base <= 1; base++ {
		answers := uniformAnswers(base)
		prev, err := Score(answers)
		require.NoError(t, err)

		for _, q := range catalog.Questions() {
			for answers[q.ID] < catalog.MaxRisk {
				answers[q.ID]++
				res, err := Score(answers)
				require.NoError(t, err)
				if res.OverallLevel.Rank() < prev.OverallLevel.Rank() {
					t.Fatalf("raising %s to %d dropped overall level %s -> %s",
						q.ID, answers[q.ID], prev.OverallLevel, res.OverallLevel)
				}
				prev = res
			}
		}
	}
}

func TestIdempotence(t *testing.T) {
	answers := Answers{
		"governance-1":  1,
		"governance-2":  0,
		"technical-1":   2,
		"technical-2":   1,
		"operational-1": 0,
		"operational-2": 2,
		"privacy-1":     1,
		"privacy-2":     1,
	}
	first, err := Score(answers)
	require.NoError(t, err)
	second, err := Score(answers)
	require.NoError(t, err)

	if !reflect.DeepEqual(first, second) {
		t.Error("scoring the same answers twice produced different results")
	}
}

func TestMissingAnswer(t *testing.T) {
	answers := uniformAnswers(1)
	delete(answers, "privacy-2")

	_, err := Score(answers)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"privacy-2"}, verr.Missing)
}

func TestOutOfRangeAnswer(t *testing.T) {
	answers := uniformAnswers(1)
	answers["technical-1"] = 3

	_, err := Score(answers)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 3, verr.OutOfRange["technical-1"])

	answers["technical-1"] = -1
	_, err = Score(answers)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, -1, verr.OutOfRange["technical-1"])
}

func TestUnknownQuestion(t *testing.T) {
	answers := uniformAnswers(0)
	answers["governance-3"] = 1

	_, err := Score(answers)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"governance-3"}, verr.Unknown)
}

func TestEmptyAnswers(t *testing.T) {
	_, err := Score(Answers{})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Missing, catalog.NumQuestions())
}

// A single maxed category classifies high on its own axis while the
// overall score of 4 still sits at the low boundary.
func TestOneCategoryMaxed(t *testing.T) {
	answers := uniformAnswers(0)
	answers["governance-1"] = 2
	answers["governance-2"] = 2

	res, err := Score(answers)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Overall)
	assert.Equal(t, LevelLow, res.OverallLevel)
	for _, cs := range res.Categories {
		if cs.Category == catalog.CategoryGovernance {
			assert.Equal(t, 4, cs.Score)
			assert.Equal(t, LevelHigh, cs.Level)
		} else {
			assert.Equal(t, LevelLow, cs.Level)
		}
	}
	// Overall low: no recommendations even with a maxed category.
	assert.Empty(t, res.Recommendations)
}

func TestValidationErrorMessage(t *testing.T) {
	verr := &ValidationError{Missing: []string{"privacy-1"}}
	assert.Contains(t, verr.Error(), "privacy-1")

	verr = &ValidationError{OutOfRange: map[string]int{"technical-1": 7}}
	assert.Contains(t, verr.Error(), "technical-1")
	assert.Contains(t, verr.Error(), "7")
}
