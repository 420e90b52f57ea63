package dto

// DeveloperSignupRequest - minimal signup; the profile is filled in later.
type DeveloperSignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// FounderSignupRequest - founder accounts always carry the startup basics.
type FounderSignupRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	StartupName string `json:"startupName" binding:"required"`
	Tagline     string `json:"tagline"`
	Stage       string `json:"stage"`
	Location    string `json:"location"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

// AuthResponse - returned by signup and login.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// GithubAuthResult feeds the post-OAuth redirect: the frontend needs to know
// whether the account already has a password ("key" query param).
type GithubAuthResult struct {
	Token       string
	PasswordSet bool
	Email       string
}
