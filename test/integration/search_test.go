package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"cofoundermatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestSearchFounders_Filters(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	devToken, _ := helpers.CreateAndLoginDeveloper(t, ts)

	fintech := helpers.CreateFounder(t, ts.DB, "Jane", "PayFlow")
	require.NoError(t, ts.DB.Model(fintech).Updates(map[string]interface{}{
		"stage":          "Seed",
		"location":       "Berlin",
		"funding_amount": 2000000,
		"industry":       datatypes.JSONSlice[string]{"Fintech"},
	}).Error)

	health := helpers.CreateFounder(t, ts.DB, "John", "MediTrack")
	require.NoError(t, ts.DB.Model(health).Updates(map[string]interface{}{
		"stage":          "Series A",
		"location":       "London",
		"funding_amount": 10000000,
		"industry":       datatypes.JSONSlice[string]{"Healthcare"},
	}).Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/developer/founders?industry=Fintech", devToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "PayFlow")
	assert.NotContains(t, body, "MediTrack")

	res, body = ts.SendRequest(t, http.MethodGet, "/developer/founders?minFunding=5000000", devToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "MediTrack")
	assert.NotContains(t, body, "PayFlow")

	res, body = ts.SendRequest(t, http.MethodGet, "/developer/founders?search=pay", devToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "PayFlow")
}

// Search results never expose account emails or verification state.
func TestSearchFounders_NoPrivateFields(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	devToken, _ := helpers.CreateAndLoginDeveloper(t, ts)
	founder := helpers.CreateFounder(t, ts.DB, "Jane", "Private Startup")

	res, body := ts.SendRequest(t, http.MethodGet, "/developer/founders", devToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Private Startup")
	assert.NotContains(t, body, founder.Email)
	assert.NotContains(t, body, "passwordHash")
	assert.NotContains(t, body, "isPhoneVerified")
}

func TestSearchFounders_Pagination(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	devToken, _ := helpers.CreateAndLoginDeveloper(t, ts)
	for i := 0; i < 5; i++ {
		helpers.CreateFounder(t, ts.DB, "Founder", "Startup")
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/developer/founders?page=2&limit=2", devToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Founders   []map[string]interface{} `json:"founders"`
		Pagination struct {
			Total int64 `json:"total"`
			Page  int   `json:"page"`
			Pages int   `json:"pages"`
			Limit int   `json:"limit"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Len(t, resp.Founders, 2)
	assert.EqualValues(t, 5, resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 3, resp.Pagination.Pages)
	assert.Equal(t, 2, resp.Pagination.Limit)
}

// Startups that never set open positions carry a JSON null in that column;
// the filter must skip them without erroring rather than blow up the query.
func TestSearchFounders_OpenPositions(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	devToken, _ := helpers.CreateAndLoginDeveloper(t, ts)

	hiring := helpers.CreateFounder(t, ts.DB, "Jane", "Hiring Startup")
	require.NoError(t, ts.DB.Model(hiring).Update(
		"open_positions", datatypes.JSONSlice[string]{"CTO"},
	).Error)

	// Left with its default null open_positions column.
	helpers.CreateFounder(t, ts.DB, "John", "Quiet Startup")

	res, body := ts.SendRequest(t, http.MethodGet, "/developer/founders?openPositions=true", devToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Hiring Startup")
	assert.NotContains(t, body, "Quiet Startup")
}

// Candidate search is a founder surface only; it is not reachable from the
// developer route group with any token.
func TestSearchDevelopers_NotOnDeveloperSurface(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	devToken, _ := helpers.CreateAndLoginDeveloper(t, ts)

	res, body := ts.SendRequest(t, http.MethodGet, "/developer/developers", devToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/founder/developers/all", devToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}

func TestSearchFounders_InvalidFilterValue(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	devToken, _ := helpers.CreateAndLoginDeveloper(t, ts)

	res, body := ts.SendRequest(t, http.MethodGet, "/developer/founders?sort=bogus", devToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestSearchDevelopers_Filters(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	founderToken, _ := helpers.CreateAndLoginFounder(t, ts)

	senior := helpers.CreateDeveloper(t, ts.DB, "Grace Hopper")
	require.NoError(t, ts.DB.Model(senior).Updates(map[string]interface{}{
		"title":               "Backend Engineer",
		"years_of_experience": 10,
		"skills":              datatypes.JSONSlice[string]{"Go", "Kubernetes"},
	}).Error)

	junior := helpers.CreateDeveloper(t, ts.DB, "Fresh Grad")
	require.NoError(t, ts.DB.Model(junior).Updates(map[string]interface{}{
		"title":               "Frontend Engineer",
		"years_of_experience": 1,
		"skills":              datatypes.JSONSlice[string]{"React"},
	}).Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/founder/developers/all?minExperience=5", founderToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Grace Hopper")
	assert.NotContains(t, body, "Fresh Grad")

	res, body = ts.SendRequest(t, http.MethodGet, "/founder/developers/all?skills=Kubernetes", founderToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Grace Hopper")
	assert.NotContains(t, body, "Fresh Grad")
}

func TestSearchDevelopers_SortByExperience(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	founderToken, _ := helpers.CreateAndLoginFounder(t, ts)

	a := helpers.CreateDeveloper(t, ts.DB, "Two Years")
	require.NoError(t, ts.DB.Model(a).Update("years_of_experience", 2).Error)
	b := helpers.CreateDeveloper(t, ts.DB, "Nine Years")
	require.NoError(t, ts.DB.Model(b).Update("years_of_experience", 9).Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/founder/developers/all?sort=experience", founderToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Developers []struct {
			Name string `json:"name"`
		} `json:"developers"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.NotEmpty(t, resp.Developers)
	assert.Equal(t, "Nine Years", resp.Developers[0].Name)
}
