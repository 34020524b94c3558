package services

import (
	"testing"

	"github.com/sitecheck-simple/catalog"
	"github.com/sitecheck-simple/dto"
	"github.com/sitecheck-simple/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func scored(questionID string, score int) models.Answer {
	return models.Answer{QuestionID: questionID, Score: intPtr(score)}
}

func notApplicable(questionID string) models.Answer {
	return models.Answer{QuestionID: questionID}
}

// twoQuestionCatalog mirrors the worked examples: question "a" weighs 2,
// question "b" weighs 1, both in the same category.
var twoQuestionCatalog = []catalog.SafetyQuestion{
	{ID: "a", Category: "fire_prevention", Question: "Extinguishers present", Weight: 2},
	{ID: "b", Category: "fire_prevention", Question: "Exits clear", Weight: 1},
}

func TestComputeScore(t *testing.T) {
	svc := NewScoringService()

	tests := []struct {
		name           string
		questions      []catalog.SafetyQuestion
		answers        []models.Answer
		wantTotal      int
		wantMax        int
		wantPercentage float64
	}{
		{
			name:           "full score with one question not applicable",
			questions:      twoQuestionCatalog,
			answers:        []models.Answer{scored("a", 5), notApplicable("b")},
			wantTotal:      10,
			wantMax:        10,
			wantPercentage: 100,
		},
		{
			name:           "unanswered question still counts toward the maximum",
			questions:      twoQuestionCatalog,
			answers:        []models.Answer{scored("a", 1)},
			wantTotal:      2,
			wantMax:        15,
			wantPercentage: 100.0 * 2 / 15,
		},
		{
			name:           "empty catalog yields zero percentage, not NaN",
			questions:      nil,
			answers:        nil,
			wantTotal:      0,
			wantMax:        0,
			wantPercentage: 0,
		},
		{
			name:           "no answers at all",
			questions:      twoQuestionCatalog,
			answers:        nil,
			wantTotal:      0,
			wantMax:        15,
			wantPercentage: 0,
		},
		{
			name:           "everything not applicable yields zero, not undefined",
			questions:      twoQuestionCatalog,
			answers:        []models.Answer{notApplicable("a"), notApplicable("b")},
			wantTotal:      0,
			wantMax:        0,
			wantPercentage: 0,
		},
		{
			name:           "answers for unknown questions are ignored",
			questions:      twoQuestionCatalog,
			answers:        []models.Answer{scored("a", 5), scored("ghost", 5)},
			wantTotal:      10,
			wantMax:        15,
			wantPercentage: 100.0 * 10 / 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.ComputeScore(tt.questions, tt.answers)
			assert.Equal(t, tt.wantTotal, got.TotalScore)
			assert.Equal(t, tt.wantMax, got.MaxScore)
			assert.InDelta(t, tt.wantPercentage, got.Percentage, 1e-9)
		})
	}
}

func TestComputeScoreIsPure(t *testing.T) {
	svc := NewScoringService()
	answers := []models.Answer{scored("a", 3), notApplicable("b")}

	first := svc.ComputeScore(twoQuestionCatalog, answers)
	second := svc.ComputeScore(twoQuestionCatalog, answers)

	assert.Equal(t, first, second)
}

func TestComputeScorePercentageStaysInRange(t *testing.T) {
	svc := NewScoringService()

	// Every combination of answer states over the two-question catalog
	states := []func(string) *models.Answer{
		func(string) *models.Answer { return nil }, // unanswered
		func(id string) *models.Answer { a := notApplicable(id); return &a },
		func(id string) *models.Answer { a := scored(id, 1); return &a },
		func(id string) *models.Answer { a := scored(id, 3); return &a },
		func(id string) *models.Answer { a := scored(id, 5); return &a },
	}

	for _, stateA := range states {
		for _, stateB := range states {
			var answers []models.Answer
			if a := stateA("a"); a != nil {
				answers = append(answers, *a)
			}
			if b := stateB("b"); b != nil {
				answers = append(answers, *b)
			}

			got := svc.ComputeScore(twoQuestionCatalog, answers)
			assert.GreaterOrEqual(t, got.Percentage, 0.0)
			assert.LessOrEqual(t, got.Percentage, 100.0)
		}
	}
}

func TestComputeScoreNotApplicableDiffersFromUnanswered(t *testing.T) {
	svc := NewScoringService()

	unanswered := svc.ComputeScore(twoQuestionCatalog, []models.Answer{scored("a", 5)})
	markedNA := svc.ComputeScore(twoQuestionCatalog, []models.Answer{scored("a", 5), notApplicable("b")})

	// N/A removes the question from the denominator; leaving it unanswered keeps it
	assert.Equal(t, unanswered.TotalScore, markedNA.TotalScore)
	assert.Equal(t, 15, unanswered.MaxScore)
	assert.Equal(t, 10, markedNA.MaxScore)
	assert.Greater(t, markedNA.Percentage, unanswered.Percentage)
}

func TestComputeScoreUpsertKeepsLatestAnswer(t *testing.T) {
	svc := NewScoringService()

	answers := []models.Answer{scored("a", 1), scored("a", 5)}
	got := svc.ComputeScore(twoQuestionCatalog, answers)

	assert.Equal(t, 10, got.TotalScore)

	// The same law holds in the category breakdown
	breakdown := svc.CategoryBreakdown(catalog.Questions, []models.Answer{
		scored("fp-01", 1),
		scored("fp-01", 5),
	})
	entry := findCategory(t, breakdown, "fire_prevention")
	assert.Equal(t, 10, entry.TotalScore)
}

func TestCategoryBreakdown(t *testing.T) {
	svc := NewScoringService()

	// fp-01 scored 5 (weight 2), fp-02 N/A (weight 2), fp-03 unanswered (weight 2)
	answers := []models.Answer{
		scored("fp-01", 5),
		notApplicable("fp-02"),
	}

	breakdown := svc.CategoryBreakdown(catalog.Questions, answers)
	require.Len(t, breakdown, len(catalog.Categories))

	entry := findCategory(t, breakdown, "fire_prevention")
	assert.Equal(t, len(catalog.Categories), entry.Index)
	assert.Equal(t, 10, entry.TotalScore)
	assert.Equal(t, 20, entry.MaxScore)
	assert.InDelta(t, 50.0, entry.Percentage, 1e-9)

	// Untouched categories report zero against their full maximum
	other := findCategory(t, breakdown, "ppe")
	assert.Equal(t, 0, other.TotalScore)
	assert.InDelta(t, 0.0, other.Percentage, 1e-9)
}

func TestCategoryBreakdownAllNotApplicable(t *testing.T) {
	svc := NewScoringService()

	answers := []models.Answer{
		notApplicable("fp-01"),
		notApplicable("fp-02"),
		notApplicable("fp-03"),
	}

	breakdown := svc.CategoryBreakdown(catalog.Questions, answers)
	entry := findCategory(t, breakdown, "fire_prevention")
	assert.Equal(t, 0, entry.MaxScore)
	assert.InDelta(t, 0.0, entry.Percentage, 1e-9)
}

func TestIsComplete(t *testing.T) {
	svc := NewScoringService()

	t.Run("presence of every answer counts, values do not", func(t *testing.T) {
		answers := []models.Answer{scored("a", 2), notApplicable("b")}
		assert.True(t, svc.IsComplete(twoQuestionCatalog, answers))
	})

	t.Run("one missing answer blocks completion", func(t *testing.T) {
		answers := []models.Answer{scored("a", 5)}
		assert.False(t, svc.IsComplete(twoQuestionCatalog, answers))
	})

	t.Run("empty catalog is trivially complete", func(t *testing.T) {
		assert.True(t, svc.IsComplete(nil, nil))
	})
}

func findCategory(t *testing.T, breakdown []dto.CategoryScore, key string) dto.CategoryScore {
	t.Helper()
	for _, entry := range breakdown {
		if entry.Key == key {
			return entry
		}
	}
	t.Fatalf("category %q not found in breakdown", key)
	return dto.CategoryScore{}
}
