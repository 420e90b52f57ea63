package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

// GithubUser is the subset of the GitHub profile the app links to a
// Developer account.
type GithubUser struct {
	ID        string
	Login     string
	Name      string
	Email     string
	AvatarURL string
	Bio       string
	Location  string
	HTMLURL   string
}

// Provider abstracts the OAuth exchange so handlers can be tested with a stub.
type Provider interface {
	AuthCodeURL(state string) string
	FetchUser(ctx context.Context, code string) (*GithubUser, error)
}

type GithubClient struct {
	cfg        *oauth2.Config
	apiBaseURL string
}

func NewGithubClient(clientID, clientSecret, callbackURL string) *GithubClient {
	return &GithubClient{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"user:email"},
			Endpoint:     github.Endpoint,
		},
		apiBaseURL: "https://api.github.com",
	}
}

// AuthCodeURL builds the GitHub authorize redirect target.
func (c *GithubClient) AuthCodeURL(state string) string {
	return c.cfg.AuthCodeURL(state)
}

// FetchUser exchanges the callback code and loads the user's profile.
// When the profile email is private, the primary verified address is taken
// from /user/emails, falling back to the noreply address.
func (c *GithubClient) FetchUser(ctx context.Context, code string) (*GithubUser, error) {
	token, err := c.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	client := c.cfg.Client(ctx, token)

	var raw struct {
		ID        int64  `json:"id"`
		Login     string `json:"login"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		AvatarURL string `json:"avatar_url"`
		Bio       string `json:"bio"`
		Location  string `json:"location"`
		HTMLURL   string `json:"html_url"`
	}
	if err := c.getJSON(client, "/user", &raw); err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	user := &GithubUser{
		ID:        strconv.FormatInt(raw.ID, 10),
		Login:     raw.Login,
		Name:      raw.Name,
		Email:     raw.Email,
		AvatarURL: raw.AvatarURL,
		Bio:       raw.Bio,
		Location:  raw.Location,
		HTMLURL:   raw.HTMLURL,
	}
	if user.Name == "" {
		user.Name = raw.Login
	}

	if user.Email == "" {
		user.Email = c.primaryEmail(client)
	}
	if user.Email == "" {
		user.Email = fmt.Sprintf("%s@users.noreply.github.com", raw.Login)
	}

	return user, nil
}

func (c *GithubClient) primaryEmail(client *http.Client) string {
	var emails []struct {
		Email    string `json:"email"`
		Primary  bool   `json:"primary"`
		Verified bool   `json:"verified"`
	}
	if err := c.getJSON(client, "/user/emails", &emails); err != nil {
		return ""
	}
	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email
		}
	}
	if len(emails) > 0 {
		return emails[0].Email
	}
	return ""
}

func (c *GithubClient) getJSON(client *http.Client, path string, out interface{}) error {
	resp, err := client.Get(c.apiBaseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github api %s: status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
