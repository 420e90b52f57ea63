package routes

import (
	"cofoundermatch_backend/internal/handlers"
	"cofoundermatch_backend/internal/middleware"
	"cofoundermatch_backend/internal/models"

	"github.com/gin-gonic/gin"
)

func registerFounderRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	founder := r.Group("/founder")

	founder.POST("/signup", h.Founder.Signup)
	founder.POST("/login", h.Founder.Login)

	founderOnly := founder.Group("", middleware.AuthMiddleware(), middleware.RoleMiddleware(models.RoleFounder))
	founderOnly.GET("/profile", h.Founder.GetSelf)
	founderOnly.PUT("/profile", h.Founder.UpdateProfile)
	founderOnly.GET("/developers/all", h.Founder.SearchDevelopers)

	authed := founder.Group("", middleware.AuthMiddleware())
	authed.GET("/:id", h.Founder.GetByID)
}
