package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitecheck-simple/services"
)

var reportService = services.NewReportService()

// GetReport godoc
// @Summary Generate the inspection report
// @Description Compile the completed evaluation into a self-contained HTML document; pass format=json for the compilation result envelope
// @Tags reports
// @Accept json
// @Produce html
// @Param id path string true "Project ID"
// @Param format query string false "Response format (html or json)"
// @Success 200 {string} string "Report document"
// @Router /projects/{id}/report [get]
func GetReport(c *gin.Context) {
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

	project, err := projectService.GetProjectDetail(projectID, userID.(string), isAdmin)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Project not found or access denied: " + err.Error(),
		})
		return
	}

	// Report generation is gated on a completed evaluation
	if project.Evaluation == nil || project.Evaluation.CompletedAt == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Evaluation must be completed before generating the report",
		})
		return
	}

	result, err := reportService.Compile(project, *project.Evaluation)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to compile report: " + err.Error(),
		})
		return
	}

	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   result,
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(result.HTML))
}
