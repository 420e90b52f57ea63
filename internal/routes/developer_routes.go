package routes

import (
	"cofoundermatch_backend/internal/handlers"
	"cofoundermatch_backend/internal/middleware"
	"cofoundermatch_backend/internal/models"

	"github.com/gin-gonic/gin"
)

func registerDeveloperRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	dev := r.Group("/developer")

	// Public auth surface.
	dev.POST("/signup", h.Developer.Signup)
	dev.POST("/login", h.Developer.Login)
	dev.GET("/auth/github", h.Developer.GithubLogin)
	dev.GET("/auth/github/callback", h.Developer.GithubCallback)

	// Developer-only account and profile surface.
	developerOnly := dev.Group("", middleware.AuthMiddleware(), middleware.RoleMiddleware(models.RoleDeveloper))
	developerOnly.GET("/logout", h.Developer.Logout)
	developerOnly.POST("/set-password", h.Developer.SetPassword)
	developerOnly.GET("", h.Developer.GetSelf)
	developerOnly.PUT("/developers", h.Developer.UpdateProfile)

	// Discovery: startups for the developer, plus public developer profiles.
	developerOnly.GET("/founders", h.Developer.SearchFounders)

	authed := dev.Group("", middleware.AuthMiddleware())
	authed.GET("/developers/:id", h.Developer.GetByID)
}
