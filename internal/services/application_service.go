package services

import (
	"context"
	"errors"

	"cofoundermatch_backend/internal/logger"
	"cofoundermatch_backend/internal/models"
	"cofoundermatch_backend/internal/repositories"
	"cofoundermatch_backend/internal/services/dto"
	"cofoundermatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService struct {
	repo        repositories.ApplicationRepository
	founderRepo repositories.FounderRepository
}

func NewApplicationService(repo repositories.ApplicationRepository, founderRepo repositories.FounderRepository) *ApplicationService {
	return &ApplicationService{repo: repo, founderRepo: founderRepo}
}

// Submit creates a pending application. The pre-check gives a friendly error
// on the common path; the unique index catches the concurrent race.
func (s *ApplicationService) Submit(ctx context.Context, db *gorm.DB, developerID, founderID string, req dto.SubmitApplicationRequest) (*dto.SubmitApplicationResponse, error) {
	if _, err := s.founderRepo.FindByID(db, founderID); err != nil {
		if errors.Is(err, repositories.ErrFounderNotFound) {
			return nil, apperrors.ErrFounderNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	exists, err := s.repo.Exists(db, developerID, founderID, req.Position)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	app := &models.Application{
		DeveloperID:    developerID,
		FounderID:      founderID,
		Position:       req.Position,
		Status:         models.ApplicationStatusPending,
		CoverLetter:    req.CoverLetter,
		Resume:         req.Resume,
		ExpectedSalary: req.ExpectedSalary,
		StartDate:      req.StartDate,
	}
	if err := s.repo.Create(db, app); err != nil {
		if errors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "application submitted",
		"application_id", app.ID, "founder_id", founderID, "position", req.Position)
	return &dto.SubmitApplicationResponse{
		Message:     "Application submitted successfully",
		Application: app,
	}, nil
}

func (s *ApplicationService) ListForDeveloper(ctx context.Context, db *gorm.DB, developerID string) ([]dto.MyApplication, error) {
	apps, err := s.repo.ListByDeveloper(db, developerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.MyApplication, 0, len(apps))
	for i := range apps {
		result = append(result, toMyApplication(&apps[i]))
	}
	return result, nil
}

func (s *ApplicationService) ListForFounder(ctx context.Context, db *gorm.DB, founderID string, req dto.ReceivedApplicationsRequest) ([]dto.ReceivedApplication, error) {
	filter := repositories.ReceivedFilter{
		Status:   models.ApplicationStatus(req.Status),
		Position: req.Position,
		Sort:     req.Sort,
	}
	apps, err := s.repo.ListByFounder(db, founderID, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.ReceivedApplication, 0, len(apps))
	for i := range apps {
		result = append(result, toReceivedApplication(&apps[i]))
	}
	return result, nil
}

// UpdateStatus moves a pending application to accepted or rejected. The
// transition is one-shot; a second decision conflicts instead of overwriting.
func (s *ApplicationService) UpdateStatus(ctx context.Context, db *gorm.DB, founderID, applicationID string, req dto.UpdateApplicationStatusRequest) (*dto.UpdateApplicationStatusResponse, error) {
	status := models.ApplicationStatus(req.Status)
	if !status.IsDecision() {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	app, err := s.repo.DecideIfPending(db, applicationID, founderID, status, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrApplicationNotFound):
			return nil, apperrors.ErrApplicationNotFound
		case errors.Is(err, repositories.ErrApplicationAlreadyDecided):
			return nil, apperrors.ErrApplicationAlreadyDecided
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	logger.CtxInfo(ctx, "application decided",
		"application_id", applicationID, "status", status)
	return &dto.UpdateApplicationStatusResponse{
		Message:     "Application status updated successfully",
		Application: app,
	}, nil
}

// toMyApplication projects an application for its developer. The founder's
// contact details appear only once the application is accepted.
func toMyApplication(app *models.Application) dto.MyApplication {
	out := dto.MyApplication{
		ID:          app.ID,
		Position:    app.Position,
		Status:      app.Status,
		AppliedDate: app.CreatedAt,
	}
	if f := app.Founder; f != nil {
		out.Company = dto.CompanySummary{
			Name:     f.StartupName,
			Logo:     f.Logo,
			Location: f.Location,
			Industry: nonNil(f.Industry),
		}
		if app.Status == models.ApplicationStatusAccepted {
			out.ContactInfo = &dto.ContactInfo{Email: f.Email, Phone: f.Phone}
		}
	}
	return out
}

// toReceivedApplication projects an application for the founder's inbox.
// The candidate's contact details appear only on accepted applications.
func toReceivedApplication(app *models.Application) dto.ReceivedApplication {
	out := dto.ReceivedApplication{
		ID: app.ID,
		Application: dto.ApplicationDetails{
			Position:       app.Position,
			Status:         app.Status,
			CoverLetter:    app.CoverLetter,
			Resume:         app.Resume,
			ExpectedSalary: app.ExpectedSalary,
			StartDate:      app.StartDate,
			AppliedDate:    app.CreatedAt,
			Notes:          app.Notes,
		},
	}
	if d := app.Developer; d != nil {
		avatar := d.AvatarURL
		if avatar == "" {
			avatar = defaultAvatar
		}
		out.Candidate = dto.CandidateSummary{
			ID:          d.ID,
			Name:        d.Name,
			Avatar:      avatar,
			Title:       d.Title,
			Experience:  d.YearsOfExperience,
			Location:    d.Location,
			Skills:      nonNil(d.Skills),
			GithubURL:   d.GithubURL,
			LinkedinURL: d.LinkedinURL,
		}
		if app.Status == models.ApplicationStatusAccepted {
			out.Candidate.ContactInfo = &dto.ContactInfo{Email: d.Email, Phone: d.Phone}
		}
	}
	return out
}
