package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMarshal_HidesInternals(t *testing.T) {
	appErr := Wrap(errors.New("pq: connection refused"), CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	data, err := json.Marshal(appErr)
	require.NoError(t, err)

	body := string(data)
	assert.Contains(t, body, "Internal server error")
	assert.NotContains(t, body, "connection refused")
	assert.NotContains(t, body, "HTTPCode")
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	appErr := Wrap(cause, CodeInternalError, "system", "wrapped", http.StatusInternalServerError)
	assert.ErrorIs(t, appErr, cause)
}

func TestWithDetails(t *testing.T) {
	appErr := ValidationError(map[string]string{"email": "Must be a valid email address"})

	data, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Must be a valid email address")
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestHandleError_AppError(t *testing.T) {
	c, w := newTestContext()

	HandleError(c, ErrEmailAlreadyExists)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already in use")
}

// Outside debug mode a raw error reaches the client as a generic 500.
func TestHandleError_HidesInternalDetails(t *testing.T) {
	SetDebug(false)
	c, w := newTestContext()

	HandleError(c, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestHandleError_DebugKeepsMessage(t *testing.T) {
	SetDebug(true)
	defer SetDebug(false)
	c, w := newTestContext()

	HandleError(c, New(CodeInternalError, "system", "query timeout on founders", http.StatusInternalServerError))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "query timeout on founders")
}
