package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool, len(Questions))
	for _, q := range Questions {
		assert.Falsef(t, seen[q.ID], "duplicate question id %q", q.ID)
		seen[q.ID] = true
	}
}

func TestEveryQuestionBelongsToAKnownCategory(t *testing.T) {
	for _, q := range Questions {
		_, ok := CategoryByKey(q.Category)
		assert.Truef(t, ok, "question %q references unknown category %q", q.ID, q.Category)
	}
}

func TestWeightsArePositive(t *testing.T) {
	for _, q := range Questions {
		assert.Positivef(t, q.Weight, "question %q has non-positive weight", q.ID)
	}
}

func TestEveryCategoryHasQuestions(t *testing.T) {
	for _, c := range Categories {
		assert.NotEmptyf(t, QuestionsByCategory(c.Key), "category %q has no questions", c.Key)
	}
}

func TestQuestionByID(t *testing.T) {
	q, ok := QuestionByID("doc-01")
	require.True(t, ok)
	assert.Equal(t, "documentation", q.Category)

	_, ok = QuestionByID("nope")
	assert.False(t, ok)
}

func TestCategoryIndexFollowsReportOrder(t *testing.T) {
	for i, c := range Categories {
		assert.Equal(t, i, CategoryIndex(c.Key))
	}
	assert.Equal(t, -1, CategoryIndex("nope"))
}

func TestQuestionsByCategoryPreservesCatalogOrder(t *testing.T) {
	subset := QuestionsByCategory("fire_prevention")
	require.Len(t, subset, 3)
	assert.Equal(t, "fp-01", subset[0].ID)
	assert.Equal(t, "fp-02", subset[1].ID)
	assert.Equal(t, "fp-03", subset[2].ID)
}

func TestTotalQuestions(t *testing.T) {
	assert.Equal(t, len(Questions), TotalQuestions())
}
