package handlers

import (
	"net/http"

	"cofoundermatch_backend/internal/services"
	"cofoundermatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PhoneAuthHandler struct {
	*BaseHandler
	service *services.PhoneService
}

func NewPhoneAuthHandler(base *BaseHandler, service *services.PhoneService) *PhoneAuthHandler {
	return &PhoneAuthHandler{BaseHandler: base, service: service}
}

func (h *PhoneAuthHandler) RequestVerification(c *gin.Context) {
	var req dto.RequestVerificationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.RequestVerification(c.Request.Context(), h.GetDB(c), req); err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

func (h *PhoneAuthHandler) Verify(c *gin.Context) {
	var req dto.VerifyPhoneRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.Verify(c.Request.Context(), h.GetDB(c), req); err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Phone number verified successfully"})
}
