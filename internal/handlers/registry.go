package handlers

import (
	"cofoundermatch_backend/internal/services"
	"cofoundermatch_backend/internal/services/oauth"
)

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	Developer   *DeveloperHandler
	Founder     *FounderHandler
	Application *ApplicationHandler
	PhoneAuth   *PhoneAuthHandler
}

func NewAppHandlers(svc *services.ServiceContainer, oauthProvider oauth.Provider) *AppHandlers {
	base := NewBaseHandler()
	return &AppHandlers{
		Developer:   NewDeveloperHandler(base, svc.Developer, svc.Search, oauthProvider),
		Founder:     NewFounderHandler(base, svc.Founder, svc.Search),
		Application: NewApplicationHandler(base, svc.Application),
		PhoneAuth:   NewPhoneAuthHandler(base, svc.Phone),
	}
}
