package v1

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sitecheck-simple/dto"
	"github.com/sitecheck-simple/models"
	"github.com/sitecheck-simple/services"
)

var projectService = services.NewProjectService()

// ListProjects godoc
// @Summary List projects with pagination and filtering
// @Description Get all projects for admin, or only user's projects for regular users
// @Tags projects
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param search query string false "Search term for project name/location/description"
// @Param sortBy query string false "Field to sort by (created_at, updated_at, name, evaluation_date, final_score)"
// @Param sortOrder query string false "Sort order (asc or desc)"
// @Success 200 {object} dto.ProjectListResponse
// @Router /projects [get]
func ListProjects(c *gin.Context) {
	// Get user info from context (set by AuthMiddleware)
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	// Check if user is admin
	role, _ := c.Get("role")
	isAdmin := role == "admin"

	// Parse query parameters
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}

	// Build filter
	filter := dto.ProjectFilter{
		UserID:    userID.(string),
		Search:    c.Query("search"),
		SortBy:    c.DefaultQuery("sortBy", "created_at"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
		Page:      page,
		PageSize:  pageSize,
		IsAdmin:   isAdmin,
	}

	// Call service
	response, err := projectService.ListProjects(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve projects: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetProject godoc
// @Summary Get a project by ID
// @Description Get details of a project, including its evaluation and answers
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.Project
// @Router /projects/{id} [get]
func GetProject(c *gin.Context) {
	// Get user info from context
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	// Check if user is admin
	role, _ := c.Get("role")
	isAdmin := role == "admin"

	// Get project ID from URL
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project ID is required"})
		return
	}

	// Get project with its evaluation
	project, err := projectService.GetProjectDetail(projectID, userID.(string), isAdmin)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Project not found or access denied: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// CreateProject godoc
// @Summary Create a new project
// @Description Create a new inspection project for the authenticated user
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project Data"
// @Success 201 {object} dto.ProjectResponse
// @Router /projects [post]
func CreateProject(c *gin.Context) {
	// Get user info from context
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	// Parse request body to DTO first
	var projectDTO dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&projectDTO); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	// Map DTO to model
	now := time.Now()
	project := models.Project{
		ID:             uuid.NewString(),
		Name:           projectDTO.Name,
		Location:       projectDTO.Location,
		Description:    projectDTO.Description,
		Engineer:       projectDTO.Engineer,
		Foreman:        projectDTO.Foreman,
		EvaluationDate: projectDTO.EvaluationDate,
		Logo:           projectDTO.Logo,
		ClientLogo:     projectDTO.ClientLogo,
		UserID:         userID.(string),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// Create project
	newProject, err := projectService.CreateProject(project)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create project: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   toProjectResponse(newProject),
	})
}

// UpdateProject godoc
// @Summary Update an existing project
// @Description Update project metadata; completion fields only change through the evaluation flow
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Project Data"
// @Success 200 {object} dto.ProjectResponse
// @Router /projects/{id} [put]
func UpdateProject(c *gin.Context) {
	// Get user info from context
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	// Get project ID from URL
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project ID is required"})
		return
	}

	// Parse request body to DTO
	var projectDTO dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&projectDTO); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	// Check if user is admin
	role, _ := c.Get("role")
	isAdmin := role == "admin"

	// Map DTO to model changes - only updating specific fields
	projectChanges := models.Project{
		ID:             projectID,
		Name:           projectDTO.Name,
		Location:       projectDTO.Location,
		Description:    projectDTO.Description,
		Engineer:       projectDTO.Engineer,
		Foreman:        projectDTO.Foreman,
		EvaluationDate: projectDTO.EvaluationDate,
		Logo:           projectDTO.Logo,
		ClientLogo:     projectDTO.ClientLogo,
	}

	updatedProject, err := projectService.UpdateProject(projectChanges, userID.(string), isAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update project: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   toProjectResponse(updatedProject),
	})
}

// DeleteProject godoc
// @Summary Delete a project
// @Description Delete a project together with its evaluation and answers
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]interface{}
// @Router /projects/{id} [delete]
func DeleteProject(c *gin.Context) {
	// Get user info from context
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	// Check if user is admin
	role, _ := c.Get("role")
	isAdmin := role == "admin"

	// Get project ID from URL
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project ID is required"})
		return
	}

	// Delete project
	err := projectService.DeleteProject(projectID, userID.(string), isAdmin)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete project: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
	})
}

// toProjectResponse maps a project model onto the response DTO
func toProjectResponse(project models.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:             project.ID,
		Name:           project.Name,
		Location:       project.Location,
		Description:    project.Description,
		Engineer:       project.Engineer,
		Foreman:        project.Foreman,
		EvaluationDate: project.EvaluationDate,
		UserID:         project.UserID,
		IsCompleted:    project.IsCompleted,
		FinalScore:     project.FinalScore,
		CreatedAt:      project.CreatedAt,
		UpdatedAt:      project.UpdatedAt,
	}
}
