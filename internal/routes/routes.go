package routes

import (
	"cofoundermatch_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers every API surface on the engine.
func SetupRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	registerDeveloperRoutes(r, h)
	registerFounderRoutes(r, h)
	registerApplicationRoutes(r, h)
	registerPhoneAuthRoutes(r, h)
}
