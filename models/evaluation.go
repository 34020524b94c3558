package models

import (
	"time"
)

// Evaluation holds the answer set and running score for one project.
// There is at most one evaluation per project, keyed by the project ID.
type Evaluation struct {
	ProjectID   string     `json:"projectId" gorm:"primaryKey;type:uuid"`
	TotalScore  int        `json:"totalScore" gorm:"not null;default:0"`
	MaxScore    int        `json:"maxScore" gorm:"not null;default:0"`
	Percentage  float64    `json:"percentage" gorm:"not null;default:0"`
	CompletedAt *time.Time `json:"completedAt" gorm:"default:null"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// Relations
	Answers []Answer `json:"answers,omitempty" gorm:"foreignKey:ProjectID;references:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for Evaluation model
func (Evaluation) TableName() string {
	return "evaluations"
}

// Answer is one response to a catalog question within an evaluation.
// A missing row means the question is unanswered; a row with a nil Score
// means the inspector marked it not applicable.
type Answer struct {
	ID         int64     `json:"-" gorm:"primaryKey;autoIncrement"`
	ProjectID  string    `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:idx_answers_project_question"`
	QuestionID string    `json:"questionId" gorm:"not null;uniqueIndex:idx_answers_project_question"`
	Score      *int      `json:"score"`
	Notes      string    `json:"notes,omitempty" gorm:"default:null"`
	Images     []string  `json:"images,omitempty" gorm:"serializer:json"` // ordered, append-only capture order
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName sets the table name for Answer model
func (Answer) TableName() string {
	return "answers"
}

// IsNotApplicable reports whether the inspector explicitly marked the
// question as not applicable.
func (a Answer) IsNotApplicable() bool {
	return a.Score == nil
}

// HasNotes reports whether the answer carries a non-empty note.
func (a Answer) HasNotes() bool {
	return len(a.Notes) > 0
}

// HasImages reports whether the answer carries at least one photo.
func (a Answer) HasImages() bool {
	return len(a.Images) > 0
}
