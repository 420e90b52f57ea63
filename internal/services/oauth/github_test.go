package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newFakeGithub(t *testing.T, profile, emails string) *GithubClient {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"fake-token","token_type":"bearer"}`))
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(profile))
	})
	mux.HandleFunc("/user/emails", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(emails))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &GithubClient{
		cfg: &oauth2.Config{
			ClientID:     "test-client",
			ClientSecret: "test-secret",
			Endpoint: oauth2.Endpoint{
				AuthURL:  srv.URL + "/auth",
				TokenURL: srv.URL + "/token",
			},
		},
		apiBaseURL: srv.URL,
	}
}

func TestFetchUser(t *testing.T) {
	client := newFakeGithub(t,
		`{"id":12345,"login":"octocat","name":"The Octocat","email":"octo@github.com","avatar_url":"https://example.com/a.png","bio":"I build","location":"SF","html_url":"https://github.com/octocat"}`,
		`[]`,
	)

	user, err := client.FetchUser(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "12345", user.ID)
	assert.Equal(t, "The Octocat", user.Name)
	assert.Equal(t, "octo@github.com", user.Email)
	assert.Equal(t, "https://github.com/octocat", user.HTMLURL)
}

// A private profile email falls back to the primary verified address.
func TestFetchUser_PrivateEmail(t *testing.T) {
	client := newFakeGithub(t,
		`{"id":7,"login":"ghost","name":"","email":""}`,
		`[{"email":"secondary@test.com","primary":false,"verified":true},{"email":"primary@test.com","primary":true,"verified":true}]`,
	)

	user, err := client.FetchUser(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "primary@test.com", user.Email)
	// Empty display name falls back to the login.
	assert.Equal(t, "ghost", user.Name)
}

// With no listed emails at all, the noreply address is synthesized.
func TestFetchUser_NoEmails(t *testing.T) {
	client := newFakeGithub(t,
		`{"id":8,"login":"hermit","name":"Hermit","email":""}`,
		`[]`,
	)

	user, err := client.FetchUser(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "hermit@users.noreply.github.com", user.Email)
}

func TestAuthCodeURL_ContainsState(t *testing.T) {
	client := NewGithubClient("id", "secret", "http://localhost:8080/cb")
	url := client.AuthCodeURL("random-state-value")
	assert.Contains(t, url, "state=random-state-value")
	assert.Contains(t, url, "client_id=id")
}
