package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/sitecheck-simple/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Catalog endpoint - the checklist the client renders
	router.GET("/catalog", middleware.AuthMiddleware(), GetCatalog)

	// Project endpoints - protected by AuthMiddleware
	projectGroup := router.Group("/projects")
	projectGroup.Use(middleware.AuthMiddleware())
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("", CreateProject)
		projectGroup.GET("/:id", GetProject)
		projectGroup.PUT("/:id", UpdateProject)
		projectGroup.DELETE("/:id", DeleteProject)

		// Evaluation lifecycle
		projectGroup.GET("/:id/evaluation", GetEvaluation)
		projectGroup.PUT("/:id/evaluation/answers", UpsertAnswer)
		projectGroup.POST("/:id/evaluation/complete", CompleteEvaluation)

		// Report compilation
		projectGroup.GET("/:id/report", GetReport)
	}

	// Admin endpoints - protected by AdminMiddleware
	statsGroup := router.Group("/admin")
	statsGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		statsGroup.GET("/stats", GetPlatformStats)
	}
}
