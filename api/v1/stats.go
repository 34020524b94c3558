package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitecheck-simple/services"
)

var statsService = services.NewStatsService()

// GetPlatformStats godoc
// @Summary Get platform statistics
// @Description Get user/project counts and the average final score across completed inspections
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} dto.PlatformStatsResponse
// @Router /admin/stats [get]
func GetPlatformStats(c *gin.Context) {
	stats, err := statsService.GetPlatformStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to get platform statistics: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   stats,
	})
}
