package services

import (
	"cofoundermatch_backend/internal/repositories"
	"cofoundermatch_backend/internal/services/sms"
)

// ServiceContainer wires every service with its repositories.
type ServiceContainer struct {
	Developer   *DeveloperService
	Founder     *FounderService
	Application *ApplicationService
	Search      *SearchService
	Phone       *PhoneService
}

func NewServiceContainer(smsProvider sms.Provider) *ServiceContainer {
	developerRepo := repositories.NewDeveloperRepository()
	founderRepo := repositories.NewFounderRepository()
	applicationRepo := repositories.NewApplicationRepository()

	return &ServiceContainer{
		Developer:   NewDeveloperService(developerRepo),
		Founder:     NewFounderService(founderRepo),
		Application: NewApplicationService(applicationRepo, founderRepo),
		Search:      NewSearchService(founderRepo, developerRepo),
		Phone:       NewPhoneService(developerRepo, founderRepo, smsProvider),
	}
}
