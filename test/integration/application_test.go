package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"cofoundermatch_backend/internal/models"
	"cofoundermatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	devToken, _ := helpers.CreateAndLoginDeveloper(t, ts)
	founder := helpers.CreateFounder(t, ts.DB, "Jane", "Hiring Startup")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/applications/apply/"+founder.ID, devToken, map[string]interface{}{
		"position":    "CTO",
		"coverLetter": "I have shipped three products.",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)
	assert.Contains(t, body, "Application submitted successfully")
	assert.Contains(t, body, "pending")
}

func TestApply_Duplicate(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	devToken, dev := helpers.CreateAndLoginDeveloper(t, ts)
	founder := helpers.CreateFounder(t, ts.DB, "Jane", "Hiring Startup")
	helpers.CreateApplication(t, ts.DB, dev.ID, founder.ID, "CTO", models.ApplicationStatusPending)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/applications/apply/"+founder.ID, devToken, map[string]interface{}{
		"position":    "CTO",
		"coverLetter": "Applying again.",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "You have already applied for this position")
}

// The same developer may apply to the same startup for a different position.
func TestApply_DifferentPosition(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	devToken, dev := helpers.CreateAndLoginDeveloper(t, ts)
	founder := helpers.CreateFounder(t, ts.DB, "Jane", "Hiring Startup")
	helpers.CreateApplication(t, ts.DB, dev.ID, founder.ID, "CTO", models.ApplicationStatusPending)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/applications/apply/"+founder.ID, devToken, map[string]interface{}{
		"position":    "Founding Engineer",
		"coverLetter": "Different role this time.",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)
}

func TestApply_UnknownFounder(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	devToken, _ := helpers.CreateAndLoginDeveloper(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/applications/apply/00000000-0000-0000-0000-000000000000", devToken, map[string]interface{}{
		"position":    "CTO",
		"coverLetter": "Hello.",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
	assert.Contains(t, body, "Founder not found")
}

// Contact info is withheld while the application is pending and revealed
// once accepted.
func TestMyApplications_ContactGating(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	devToken, dev := helpers.CreateAndLoginDeveloper(t, ts)
	founder := helpers.CreateFounder(t, ts.DB, "Jane", "Gated Startup")
	app := helpers.CreateApplication(t, ts.DB, dev.ID, founder.ID, "CTO", models.ApplicationStatusPending)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/applications/my-applications", devToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	var apps []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &apps))
	require.Len(t, apps, 1)
	assert.Nil(t, apps[0]["contactInfo"])
	assert.NotContains(t, body, founder.Email)

	require.NoError(t, ts.DB.Model(app).Update("status", models.ApplicationStatusAccepted).Error)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/applications/my-applications", devToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &apps))
	require.Len(t, apps, 1)
	assert.NotNil(t, apps[0]["contactInfo"])
	assert.Contains(t, body, founder.Email)
}

func TestReceivedApplications(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	founderToken, founder := helpers.CreateAndLoginFounder(t, ts)
	dev := helpers.CreateDeveloper(t, ts.DB, "Candidate One")
	helpers.CreateApplication(t, ts.DB, dev.ID, founder.ID, "CTO", models.ApplicationStatusPending)
	helpers.CreateApplication(t, ts.DB, dev.ID, founder.ID, "Founding Engineer", models.ApplicationStatusRejected)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/applications/received-applications", founderToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	var apps []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &apps))
	assert.Len(t, apps, 2)

	// Status filter narrows the inbox.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/applications/received-applications?status=pending", founderToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &apps))
	assert.Len(t, apps, 1)

	// Candidate contact info is hidden on non-accepted applications.
	assert.NotContains(t, body, dev.Email)
}

func TestUpdateStatus_Accept(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	founderToken, founder := helpers.CreateAndLoginFounder(t, ts)
	dev := helpers.CreateDeveloper(t, ts.DB, "Candidate")
	app := helpers.CreateApplication(t, ts.DB, dev.ID, founder.ID, "CTO", models.ApplicationStatusPending)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/applications/update-status/"+app.ID, founderToken, map[string]interface{}{
		"status": "accepted",
		"notes":  "Great fit.",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "accepted")
	assert.Contains(t, body, "responseDate")
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	founderToken, founder := helpers.CreateAndLoginFounder(t, ts)
	dev := helpers.CreateDeveloper(t, ts.DB, "Candidate")
	app := helpers.CreateApplication(t, ts.DB, dev.ID, founder.ID, "CTO", models.ApplicationStatusPending)

	// "pending" is not a decision and arbitrary strings are rejected too.
	for _, status := range []string{"pending", "hired"} {
		res, body := ts.SendRequest(t, http.MethodPut, "/api/applications/update-status/"+app.ID, founderToken, map[string]interface{}{
			"status": status,
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	}
}

// A decision is one-shot: the second transition conflicts.
func TestUpdateStatus_AlreadyDecided(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	founderToken, founder := helpers.CreateAndLoginFounder(t, ts)
	dev := helpers.CreateDeveloper(t, ts.DB, "Candidate")
	app := helpers.CreateApplication(t, ts.DB, dev.ID, founder.ID, "CTO", models.ApplicationStatusRejected)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/applications/update-status/"+app.ID, founderToken, map[string]interface{}{
		"status": "accepted",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
	assert.Contains(t, body, "already been decided")
}

// A founder cannot decide another founder's application.
func TestUpdateStatus_ForeignApplication(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	founderToken, _ := helpers.CreateAndLoginFounder(t, ts)
	otherFounder := helpers.CreateFounder(t, ts.DB, "Other", "Other Startup")
	dev := helpers.CreateDeveloper(t, ts.DB, "Candidate")
	app := helpers.CreateApplication(t, ts.DB, dev.ID, otherFounder.ID, "CTO", models.ApplicationStatusPending)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/applications/update-status/"+app.ID, founderToken, map[string]interface{}{
		"status": "accepted",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
	assert.Contains(t, body, "Application not found")
}
