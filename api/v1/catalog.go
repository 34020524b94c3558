package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitecheck-simple/catalog"
)

// GetCatalog godoc
// @Summary Get the safety question catalog
// @Description Get the ordered checklist and the category table the client renders
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /catalog [get]
func GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"categories": catalog.Categories,
			"questions":  catalog.Questions,
		},
	})
}
