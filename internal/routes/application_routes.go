package routes

import (
	"cofoundermatch_backend/internal/handlers"
	"cofoundermatch_backend/internal/middleware"
	"cofoundermatch_backend/internal/models"

	"github.com/gin-gonic/gin"
)

func registerApplicationRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	apps := r.Group("/api/applications", middleware.AuthMiddleware())

	developerOnly := apps.Group("", middleware.RoleMiddleware(models.RoleDeveloper))
	developerOnly.POST("/apply/:founderId", h.Application.Apply)
	developerOnly.GET("/my-applications", h.Application.MyApplications)

	founderOnly := apps.Group("", middleware.RoleMiddleware(models.RoleFounder))
	founderOnly.GET("/received-applications", h.Application.ReceivedApplications)
	founderOnly.PUT("/update-status/:applicationId", h.Application.UpdateStatus)
}
