package dto

import (
	"github.com/sitecheck-simple/models"
)

// ScoreSummary is the aggregate result of scoring an answer set.
type ScoreSummary struct {
	TotalScore int     `json:"totalScore"`
	MaxScore   int     `json:"maxScore"`
	Percentage float64 `json:"percentage"`
}

// CategoryScore is the rollup of one question category.
type CategoryScore struct {
	Key        string  `json:"key"`
	Name       string  `json:"name"`
	Index      int     `json:"index"` // 1-based position in report order
	TotalScore int     `json:"totalScore"`
	MaxScore   int     `json:"maxScore"`
	Percentage float64 `json:"percentage"`
}

// AnswerRequest represents one answer submission. Exactly one of the three
// answer states is expressed: a score in [1,5], or notApplicable=true. An
// unanswered question simply has no submission.
type AnswerRequest struct {
	QuestionID    string   `json:"questionId" binding:"required"`
	Score         *int     `json:"score"`
	NotApplicable bool     `json:"notApplicable"`
	Notes         string   `json:"notes"`
	Images        []string `json:"images"`
}

// EvaluationResponse bundles the persisted evaluation with the derived
// per-category rollup and the completion gate state.
type EvaluationResponse struct {
	Evaluation models.Evaluation `json:"evaluation"`
	Categories []CategoryScore   `json:"categories"`
	IsComplete bool              `json:"isComplete"`
}
