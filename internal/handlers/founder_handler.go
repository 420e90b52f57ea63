package handlers

import (
	"net/http"

	"cofoundermatch_backend/internal/middleware"
	"cofoundermatch_backend/internal/services"
	"cofoundermatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FounderHandler struct {
	*BaseHandler
	service *services.FounderService
	search  *services.SearchService
}

func NewFounderHandler(base *BaseHandler, service *services.FounderService, search *services.SearchService) *FounderHandler {
	return &FounderHandler{
		BaseHandler: base,
		service:     service,
		search:      search,
	}
}

func (h *FounderHandler) Signup(c *gin.Context) {
	var req dto.FounderSignupRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.Signup(c.Request.Context(), h.GetDB(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *FounderHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.Login(c.Request.Context(), h.GetDB(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSelf returns the authenticated founder's own document.
func (h *FounderHandler) GetSelf(c *gin.Context) {
	founder, err := h.service.GetByID(c.Request.Context(), h.GetDB(c), middleware.GetUserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, founder)
}

func (h *FounderHandler) GetByID(c *gin.Context) {
	founder, err := h.service.GetByID(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, founder)
}

func (h *FounderHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateFounderProfileRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.UpdateProfile(c.Request.Context(), h.GetDB(c), middleware.GetUserID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SearchDevelopers is the founder-facing candidate discovery endpoint.
func (h *FounderHandler) SearchDevelopers(c *gin.Context) {
	var req dto.SearchDevelopersRequest
	if !h.BindQuery(c, &req) {
		return
	}

	resp, err := h.search.SearchDevelopers(c.Request.Context(), h.GetDB(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
