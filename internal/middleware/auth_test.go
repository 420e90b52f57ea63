package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cofoundermatch_backend/internal/auth"
	"cofoundermatch_backend/internal/config"
	"cofoundermatch_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://unused-in-unit-tests")
	t.Setenv("JWT_SECRET", "middleware_test_secret_123456")
	config.LoadConfig()
}

func newAuthRouter(requiredRole models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	group := r.Group("", AuthMiddleware())
	if requiredRole != "" {
		group.Use(RoleMiddleware(requiredRole))
	}
	group.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": GetUserID(c)})
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	setupTestConfig(t)
	r := newAuthRouter("")

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "Basic abc123").Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	setupTestConfig(t)
	r := newAuthRouter("")

	w := doGet(r, "Bearer not.a.token")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Token is not valid")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	setupTestConfig(t)
	r := newAuthRouter("")

	token, err := auth.GenerateToken("user-42", string(models.RoleDeveloper))
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}

func TestRoleMiddleware(t *testing.T) {
	setupTestConfig(t)
	r := newAuthRouter(models.RoleFounder)

	devToken, err := auth.GenerateToken("dev-1", string(models.RoleDeveloper))
	require.NoError(t, err)
	founderToken, err := auth.GenerateToken("founder-1", string(models.RoleFounder))
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, doGet(r, "Bearer "+devToken).Code)
	assert.Equal(t, http.StatusOK, doGet(r, "Bearer "+founderToken).Code)
}
