package handlers

import (
	"net/http"

	"cofoundermatch_backend/internal/middleware"
	"cofoundermatch_backend/internal/services"
	"cofoundermatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	service *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, service *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, service: service}
}

// Apply submits an application from the authenticated developer to the
// founder named in the path.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), h.GetDB(c), middleware.GetUserID(c), c.Param("founderId"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// MyApplications lists the developer's own applications, newest first.
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	apps, err := h.service.ListForDeveloper(c.Request.Context(), h.GetDB(c), middleware.GetUserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ReceivedApplications lists the founder's inbox with optional filters.
func (h *ApplicationHandler) ReceivedApplications(c *gin.Context) {
	var req dto.ReceivedApplicationsRequest
	if !h.BindQuery(c, &req) {
		return
	}

	apps, err := h.service.ListForFounder(c.Request.Context(), h.GetDB(c), middleware.GetUserID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// UpdateStatus decides a pending application.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), h.GetDB(c), middleware.GetUserID(c), c.Param("applicationId"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
