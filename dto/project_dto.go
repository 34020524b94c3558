package dto

import (
	"time"

	"github.com/sitecheck-simple/models"
)

// ProjectFilter represents filter criteria for projects
type ProjectFilter struct {
	UserID    string
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
	IsAdmin   bool
}

// ProjectListResponse represents paginated project list response
type ProjectListResponse struct {
	Projects   []models.Project `json:"projects"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Name           string    `json:"name" binding:"required"`
	Location       string    `json:"location" binding:"required"`
	Description    string    `json:"description"`
	Engineer       string    `json:"engineer" binding:"required"`
	Foreman        string    `json:"foreman" binding:"required"`
	EvaluationDate time.Time `json:"evaluationDate" binding:"required"`
	Logo           *string   `json:"logo"`
	ClientLogo     *string   `json:"clientLogo"`
}

// UpdateProjectRequest represents the request payload for updating an existing project
type UpdateProjectRequest struct {
	Name           string    `json:"name" binding:"required"`
	Location       string    `json:"location" binding:"required"`
	Description    string    `json:"description"`
	Engineer       string    `json:"engineer" binding:"required"`
	Foreman        string    `json:"foreman" binding:"required"`
	EvaluationDate time.Time `json:"evaluationDate" binding:"required"`
	Logo           *string   `json:"logo"`
	ClientLogo     *string   `json:"clientLogo"`
}

// ProjectResponse represents the standard response format for a project
type ProjectResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	Engineer       string    `json:"engineer"`
	Foreman        string    `json:"foreman"`
	EvaluationDate time.Time `json:"evaluationDate"`
	UserID         string    `json:"userId"`
	IsCompleted    bool      `json:"isCompleted"`
	FinalScore     *float64  `json:"finalScore"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
