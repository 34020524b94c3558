package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitecheck-simple/dto"
	"github.com/sitecheck-simple/services"
	"gorm.io/gorm"
)

var evaluationService = services.NewEvaluationService()

// GetEvaluation godoc
// @Summary Get a project's evaluation
// @Description Get the evaluation with its answers and category rollup; an empty evaluation is created on first access
// @Tags evaluations
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.EvaluationResponse
// @Router /projects/{id}/evaluation [get]
func GetEvaluation(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	role, _ := c.Get("role")
	isAdmin := role == "admin"

	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project ID is required"})
		return
	}

	response, err := evaluationService.GetOrCreate(projectID, userID.(string), isAdmin)
	if err != nil {
		c.JSON(evaluationErrorStatus(err), gin.H{
			"status":  "error",
			"message": "Failed to load evaluation: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// UpsertAnswer godoc
// @Summary Record an answer
// @Description Record or replace the answer for one catalog question; aggregates are recomputed in the same transaction
// @Tags evaluations
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param answer body dto.AnswerRequest true "Answer Data"
// @Success 200 {object} dto.EvaluationResponse
// @Router /projects/{id}/evaluation/answers [put]
func UpsertAnswer(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	role, _ := c.Get("role")
	isAdmin := role == "admin"

	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project ID is required"})
		return
	}

	var req dto.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	response, err := evaluationService.UpsertAnswer(projectID, req, userID.(string), isAdmin)
	if err != nil {
		c.JSON(evaluationErrorStatus(err), gin.H{
			"status":  "error",
			"message": "Failed to save answer: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// CompleteEvaluation godoc
// @Summary Complete an evaluation
// @Description Stamp the evaluation as completed and snapshot the final score onto the project; fails while any question is unanswered
// @Tags evaluations
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.EvaluationResponse
// @Router /projects/{id}/evaluation/complete [post]
func CompleteEvaluation(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	role, _ := c.Get("role")
	isAdmin := role == "admin"

	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project ID is required"})
		return
	}

	response, err := evaluationService.Complete(projectID, userID.(string), isAdmin)
	if err != nil {
		c.JSON(evaluationErrorStatus(err), gin.H{
			"status":  "error",
			"message": "Failed to complete evaluation: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// evaluationErrorStatus maps service errors onto HTTP status codes
func evaluationErrorStatus(err error) int {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrUnknownQuestion),
		errors.Is(err, services.ErrInvalidScore),
		errors.Is(err, services.ErrAmbiguousAnswer),
		errors.Is(err, services.ErrMissingScore),
		errors.Is(err, services.ErrEvaluationIncomplete):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrEvaluationCompleted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
