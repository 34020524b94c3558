package services

import (
	"github.com/sitecheck-simple/catalog"
	"github.com/sitecheck-simple/dto"
	"github.com/sitecheck-simple/models"
)

// ScoringService computes weighted compliance scores. It is stateless: every
// method is a pure function of the question list and answer set, so calling
// it twice with the same inputs always yields the same result.
type ScoringService struct{}

// NewScoringService creates a new scoring service instance
func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// ComputeScore turns a sparse answer set into total, maximum and percentage
// scores over the given questions.
//
// Scoring rules:
//   - a scored answer contributes score * weight to the total
//   - a question answered "not applicable" is excluded from both the total
//     and the maximum
//   - an unanswered question contributes nothing to the total but its full
//     weight * 5 to the maximum
func (s *ScoringService) ComputeScore(questions []catalog.SafetyQuestion, answers []models.Answer) dto.ScoreSummary {
	byQuestion := dedupeAnswers(answers)

	totalScore := 0
	maxScore := 0
	for _, question := range questions {
		answer, answered := byQuestion[question.ID]
		if answered && answer.IsNotApplicable() {
			continue
		}
		maxScore += question.Weight * catalog.MaxQuestionScore
		if answered {
			totalScore += *answer.Score * question.Weight
		}
	}

	percentage := 0.0
	if maxScore > 0 {
		percentage = float64(totalScore) / float64(maxScore) * 100
	}

	return dto.ScoreSummary{
		TotalScore: totalScore,
		MaxScore:   maxScore,
		Percentage: percentage,
	}
}

// CategoryBreakdown computes one rollup per category, in report order, using
// the same N/A exclusion rule scoped to the category's questions. A category
// whose questions are all N/A reports 0%.
func (s *ScoringService) CategoryBreakdown(questions []catalog.SafetyQuestion, answers []models.Answer) []dto.CategoryScore {
	var breakdown []dto.CategoryScore
	for i, category := range catalog.Categories {
		var subset []catalog.SafetyQuestion
		for _, q := range questions {
			if q.Category == category.Key {
				subset = append(subset, q)
			}
		}
		if len(subset) == 0 {
			continue
		}

		summary := s.ComputeScore(subset, answers)
		breakdown = append(breakdown, dto.CategoryScore{
			Key:        category.Key,
			Name:       category.Name,
			Index:      i + 1,
			TotalScore: summary.TotalScore,
			MaxScore:   summary.MaxScore,
			Percentage: summary.Percentage,
		})
	}
	return breakdown
}

// IsComplete reports whether every question has an answer entry. Only
// presence counts: an N/A answer satisfies the check.
func (s *ScoringService) IsComplete(questions []catalog.SafetyQuestion, answers []models.Answer) bool {
	byQuestion := dedupeAnswers(answers)
	for _, question := range questions {
		if _, answered := byQuestion[question.ID]; !answered {
			return false
		}
	}
	return true
}

// dedupeAnswers keys answers by question id, keeping the latest entry when a
// question appears more than once.
func dedupeAnswers(answers []models.Answer) map[string]models.Answer {
	byQuestion := make(map[string]models.Answer, len(answers))
	for _, answer := range answers {
		byQuestion[answer.QuestionID] = answer
	}
	return byQuestion
}
