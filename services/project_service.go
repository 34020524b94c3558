package services

import (
	"fmt"

	"github.com/sitecheck-simple/dto"
	"github.com/sitecheck-simple/models"
	"github.com/sitecheck-simple/repositories"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo    *repositories.ProjectRepository
	evaluationRepo *repositories.EvaluationRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo:    repositories.NewProjectRepository(),
		evaluationRepo: repositories.NewEvaluationRepository(),
	}
}

// ListProjects retrieves projects with pagination, filtering and sorting
// Admin can see all projects, regular users only see their own
func (s *ProjectService) ListProjects(filter dto.ProjectFilter) (dto.ProjectListResponse, error) {
	var response dto.ProjectListResponse

	// Set defaults if not provided
	if filter.Page <= 0 {
		filter.Page = 1
	}

	if filter.PageSize <= 0 {
		filter.PageSize = 10
	}

	if filter.SortBy == "" {
		filter.SortBy = "created_at"
	}

	if filter.SortOrder == "" {
		filter.SortOrder = "desc"
	}

	// Validate sort order
	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "desc"
	}

	// Valid sort columns (whitelist approach for security)
	validSortColumns := map[string]bool{
		"created_at":      true,
		"updated_at":      true,
		"name":            true,
		"evaluation_date": true,
		"final_score":     true,
	}

	if !validSortColumns[filter.SortBy] {
		filter.SortBy = "created_at"
	}

	projects, totalCount, err := s.projectRepo.FindWithPagination(
		filter.Page,
		filter.PageSize,
		filter.SortBy,
		filter.SortOrder,
		filter.UserID,
		filter.IsAdmin,
		filter.Search,
	)

	if err != nil {
		return response, err
	}

	// Calculate total pages
	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	// Build response
	response = dto.ProjectListResponse{
		Projects:   projects,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}

	return response, nil
}

// GetProjectDetail retrieves a project by ID with its evaluation and answers
// Access control: admin can view any project, regular users only their own
func (s *ProjectService) GetProjectDetail(projectID string, userID string, isAdmin bool) (models.Project, error) {
	project, err := s.projectRepo.WithEvaluation(projectID)
	if err != nil {
		return models.Project{}, err
	}

	// Access control - return error if not admin and not owner
	if !isAdmin && project.UserID != userID {
		return models.Project{}, fmt.Errorf("unauthorized: you don't have permission to access this project")
	}

	return project, nil
}

// CreateProject creates a new project
func (s *ProjectService) CreateProject(project models.Project) (models.Project, error) {
	return s.projectRepo.Create(project)
}

// UpdateProject updates an existing project's metadata. The owner and the
// denormalized completion fields are preserved; those only change through
// the evaluation completion flow.
func (s *ProjectService) UpdateProject(project models.Project, userID string, isAdmin bool) (models.Project, error) {
	// Get existing project
	existingProject, err := s.projectRepo.FindByID(project.ID)
	if err != nil {
		return models.Project{}, err
	}

	// Access control - return error if not admin and not owner
	if !isAdmin && existingProject.UserID != userID {
		return models.Project{}, fmt.Errorf("unauthorized: you don't have permission to update this project")
	}

	// Preserve fields the update endpoint must not touch
	project.UserID = existingProject.UserID
	project.IsCompleted = existingProject.IsCompleted
	project.FinalScore = existingProject.FinalScore
	project.CreatedAt = existingProject.CreatedAt

	// Update project
	err = s.projectRepo.Update(project)
	if err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// DeleteProject deletes a project together with its evaluation and answers
func (s *ProjectService) DeleteProject(projectID string, userID string, isAdmin bool) error {
	// Cek apakah project dengan ID tersebut ada di database
	exists, err := s.projectRepo.Exists(projectID)
	if err != nil {
		return err
	}

	if !exists {
		return fmt.Errorf("project not found or already deleted")
	}

	if !isAdmin {
		owner, err := s.projectRepo.GetOwnerID(projectID)
		if err != nil {
			return err
		}

		if owner != userID {
			return fmt.Errorf("unauthorized: you don't have permission to delete this project")
		}
	}

	// Cascade delete handles the evaluation and answers in one transaction
	return s.projectRepo.Delete(projectID)
}
