package routes

import (
	"cofoundermatch_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// Phone verification is public: it runs before the founder can log in.
func registerPhoneAuthRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	phone := r.Group("/phone-auth")
	phone.POST("/request-verification", h.PhoneAuth.RequestVerification)
	phone.POST("/verify", h.PhoneAuth.Verify)
}
