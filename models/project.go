package models

import (
	"time"

	"gorm.io/gorm"
)

// Project represents a construction site under inspection
type Project struct {
	ID             string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name           string         `json:"name" gorm:"not null"`
	Location       string         `json:"location" gorm:"not null"`
	Description    string         `json:"description" gorm:"default:null"`
	Engineer       string         `json:"engineer" gorm:"not null"`
	Foreman        string         `json:"foreman" gorm:"not null"`
	EvaluationDate time.Time      `json:"evaluationDate" gorm:"not null"`
	UserID         string         `json:"userId" gorm:"type:uuid;not null;index"`
	IsCompleted    bool           `json:"isCompleted" gorm:"default:false"`
	FinalScore     *float64       `json:"finalScore" gorm:"default:null"` // snapshot of the evaluation percentage at completion time
	Logo           *string        `json:"logo" gorm:"type:text;default:null"`
	ClientLogo     *string        `json:"clientLogo" gorm:"type:text;default:null"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User       User        `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Evaluation *Evaluation `json:"evaluation,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}
