package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"cofoundermatch_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const TestPassword = "password123"

func hashPassword(t *testing.T, raw string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.MinCost)
	require.NoError(t, err, "failed to hash test password")
	return string(hash)
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// CreateDeveloper inserts a developer with a usable password.
func CreateDeveloper(t *testing.T, db *gorm.DB, name string) *models.Developer {
	t.Helper()
	dev := &models.Developer{
		Name:         name,
		Email:        uniqueEmail("dev"),
		PasswordHash: hashPassword(t, TestPassword),
	}
	require.NoError(t, db.Create(dev).Error, "failed to create test developer")
	return dev
}

// CreateFounder inserts a phone-verified founder so login works right away.
func CreateFounder(t *testing.T, db *gorm.DB, name, startupName string) *models.Founder {
	t.Helper()
	founder := &models.Founder{
		Name:         name,
		Email:        uniqueEmail("founder"),
		PasswordHash: hashPassword(t, TestPassword),
		StartupName:  startupName,
	}
	founder.IsPhoneVerified = true
	require.NoError(t, db.Create(founder).Error, "failed to create test founder")
	return founder
}

func login(t *testing.T, ts *TestServer, path, email string) string {
	t.Helper()
	res, body := ts.SendRequest(t, http.MethodPost, path, "", map[string]interface{}{
		"email":    email,
		"password": TestPassword,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed: "+body)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.NotEmpty(t, resp.Token, "login should return a token")
	return resp.Token
}

// CreateAndLoginDeveloper creates a developer and returns a valid token.
func CreateAndLoginDeveloper(t *testing.T, ts *TestServer) (string, *models.Developer) {
	t.Helper()
	dev := CreateDeveloper(t, ts.DB, "Test Developer")
	return login(t, ts, "/developer/login", dev.Email), dev
}

// CreateAndLoginFounder creates a verified founder and returns a valid token.
func CreateAndLoginFounder(t *testing.T, ts *TestServer) (string, *models.Founder) {
	t.Helper()
	founder := CreateFounder(t, ts.DB, "Test Founder", "Test Startup Inc.")
	return login(t, ts, "/founder/login", founder.Email), founder
}

// CreateApplication inserts an application directly, bypassing the API.
func CreateApplication(t *testing.T, db *gorm.DB, developerID, founderID, position string, status models.ApplicationStatus) *models.Application {
	t.Helper()
	app := &models.Application{
		DeveloperID: developerID,
		FounderID:   founderID,
		Position:    position,
		Status:      status,
		CoverLetter: "I would love to join your team.",
	}
	require.NoError(t, db.Create(app).Error, "failed to create test application")
	return app
}
