package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"cofoundermatch_backend/internal/config"
	"cofoundermatch_backend/internal/logger"
	"cofoundermatch_backend/internal/middleware"
	"cofoundermatch_backend/internal/services"
	"cofoundermatch_backend/internal/services/dto"
	"cofoundermatch_backend/internal/services/oauth"
	"cofoundermatch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const oauthStateCookie = "oauth_state"

type DeveloperHandler struct {
	*BaseHandler
	service *services.DeveloperService
	search  *services.SearchService
	oauth   oauth.Provider
}

func NewDeveloperHandler(base *BaseHandler, service *services.DeveloperService, search *services.SearchService, oauthProvider oauth.Provider) *DeveloperHandler {
	return &DeveloperHandler{
		BaseHandler: base,
		service:     service,
		search:      search,
		oauth:       oauthProvider,
	}
}

func (h *DeveloperHandler) Signup(c *gin.Context) {
	var req dto.DeveloperSignupRequest
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

func (h *DeveloperHandler) Login(c *gin.Context) {
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

// Logout exists for API symmetry; tokens are stateless and simply expire.
func (h *DeveloperHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *DeveloperHandler) SetPassword(c *gin.Context) {
	var req dto.SetPasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.SetPassword(c.Request.Context(), h.GetDB(c), middleware.GetUserID(c), req.Password); err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password set successfully"})
}

// GetSelf returns the authenticated developer's own profile.
func (h *DeveloperHandler) GetSelf(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), h.GetDB(c), middleware.GetUserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *DeveloperHandler) GetByID(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *DeveloperHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateDeveloperProfileRequest
	if !h.BindJSON(c, &req) {
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), h.GetDB(c), middleware.GetUserID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SearchFounders is the developer-facing startup discovery endpoint.
func (h *DeveloperHandler) SearchFounders(c *gin.Context) {
	var req dto.SearchFoundersRequest
	if !h.BindQuery(c, &req) {
		return
	}

	resp, err := h.search.SearchFounders(c.Request.Context(), h.GetDB(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GithubLogin starts the OAuth flow. The random state round-trips through a
// short-lived cookie and is checked in the callback.
func (h *DeveloperHandler) GithubLogin(c *gin.Context) {
	state := uuid.NewString()
	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusFound, h.oauth.AuthCodeURL(state))
}

// GithubCallback finishes the OAuth flow and hands the session to the
// frontend via redirect. The "key" query parameter tells the frontend
// whether the account already has a password.
func (h *DeveloperHandler) GithubCallback(c *gin.Context) {
	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		h.HandleError(c, apperrors.NewForbiddenError("Invalid OAuth state"))
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		h.HandleError(c, apperrors.NewBadRequestError("Missing authorization code"))
		return
	}

	ghUser, err := h.oauth.FetchUser(c.Request.Context(), code)
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "github oauth exchange failed", err)
		h.HandleError(c, apperrors.ErrOAuthExchangeFailed(err))
		return
	}

	result, err := h.service.LoginWithGithub(c.Request.Context(), h.GetDB(c), ghUser)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Redirect(http.StatusFound, authSuccessURL(config.GetConfig().Frontend.BaseURL, result))
}

func authSuccessURL(frontendBase string, result *dto.GithubAuthResult) string {
	params := url.Values{}
	params.Set("token", result.Token)
	params.Set("key", fmt.Sprintf("%t", result.PasswordSet))
	params.Set("email", result.Email)
	return frontendBase + "/auth-success?" + params.Encode()
}
