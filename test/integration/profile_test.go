package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"cofoundermatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeveloperGetSelf(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	token, dev := helpers.CreateAndLoginDeveloper(t, ts)

	res, body := ts.SendRequest(t, http.MethodGet, "/developer", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, dev.Email)

	// The formatted document never serves nulls for list fields.
	var profile map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &profile))
	assert.NotNil(t, profile["skills"])
	assert.Equal(t, "/placeholder.svg", profile["avatar"])
	assert.NotContains(t, body, "passwordHash")
}

func TestDeveloperUpdateProfile(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	token, _ := helpers.CreateAndLoginDeveloper(t, ts)

	update := map[string]interface{}{
		"title":             "Senior Backend Engineer",
		"yearsOfExperience": 7,
		"skills":            []string{"Go", "PostgreSQL"},
		"topSkills":         []map[string]interface{}{{"name": "Go", "level": 90}},
	}
	res, body := ts.SendRequest(t, http.MethodPut, "/developer/developers", token, update)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Senior Backend Engineer")
	assert.Contains(t, body, "PostgreSQL")
}

// A partial update leaves untouched fields alone.
func TestDeveloperUpdateProfile_Partial(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	token, _ := helpers.CreateAndLoginDeveloper(t, ts)

	res, body := ts.SendRequest(t, http.MethodPut, "/developer/developers", token, map[string]interface{}{
		"bio": "I build things.",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	var profile map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &profile))
	assert.Equal(t, "I build things.", profile["bio"])
	assert.Equal(t, "Test Developer", profile["name"])
}

func TestDeveloperGetByID(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	token, _ := helpers.CreateAndLoginDeveloper(t, ts)
	other := helpers.CreateDeveloper(t, ts.DB, "Other Dev")

	res, body := ts.SendRequest(t, http.MethodGet, "/developer/developers/"+other.ID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Other Dev")
}

func TestDeveloperGetByID_NotFound(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	token, _ := helpers.CreateAndLoginDeveloper(t, ts)

	res, body := ts.SendRequest(t, http.MethodGet, "/developer/developers/00000000-0000-0000-0000-000000000000", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
	assert.Contains(t, body, "Developer not found")
}

func TestFounderUpdateProfile(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	token, _ := helpers.CreateAndLoginFounder(t, ts)

	update := map[string]interface{}{
		"name":          "Renamed Startup",
		"fundingAmount": 1500000,
		"openPositions": []string{"CTO", "Founding Engineer"},
		"socialLinks":   map[string]string{"linkedin": "https://linkedin.com/company/renamed"},
	}
	res, body := ts.SendRequest(t, http.MethodPut, "/founder/profile", token, update)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Renamed Startup")
	assert.Contains(t, body, "Founding Engineer")
}

func TestFounderGetSelf(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	token, founder := helpers.CreateAndLoginFounder(t, ts)

	res, body := ts.SendRequest(t, http.MethodGet, "/founder/profile", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, founder.StartupName)
	assert.NotContains(t, body, "passwordHash")
}

func TestFounderGetByID(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	devToken, _ := helpers.CreateAndLoginDeveloper(t, ts)
	founder := helpers.CreateFounder(t, ts.DB, "Jane", "Visible Startup")

	res, body := ts.SendRequest(t, http.MethodGet, "/founder/"+founder.ID, devToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Visible Startup")
	assert.NotContains(t, body, "passwordHash")
}
