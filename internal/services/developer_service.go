package services

import (
	"context"
	"errors"

	"cofoundermatch_backend/internal/auth"
	"cofoundermatch_backend/internal/logger"
	"cofoundermatch_backend/internal/models"
	"cofoundermatch_backend/internal/repositories"
	"cofoundermatch_backend/internal/services/dto"
	"cofoundermatch_backend/internal/services/oauth"
	"cofoundermatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const defaultAvatar = "/placeholder.svg"

type DeveloperService struct {
	repo repositories.DeveloperRepository
}

func NewDeveloperService(repo repositories.DeveloperRepository) *DeveloperService {
	return &DeveloperService{repo: repo}
}

func (s *DeveloperService) Signup(ctx context.Context, db *gorm.DB, req dto.DeveloperSignupRequest) (*dto.AuthResponse, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	dev := &models.Developer{
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.repo.Create(db, dev); err != nil {
		if errors.Is(err, repositories.ErrDeveloperAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(dev.ID, string(models.RoleDeveloper))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "developer registered", "developer_id", dev.ID)
	return &dto.AuthResponse{Message: "Developer registered successfully", Token: token}, nil
}

func (s *DeveloperService) Login(ctx context.Context, db *gorm.DB, req dto.LoginRequest) (*dto.AuthResponse, error) {
	dev, err := s.repo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrDeveloperNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	// GitHub-only accounts have no password; a password login on them
	// fails the same way as a wrong password.
	if !dev.PasswordSet() || !auth.CheckPasswordHash(req.Password, dev.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(dev.ID, string(models.RoleDeveloper))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "developer logged in", "developer_id", dev.ID)
	return &dto.AuthResponse{Message: "Login successful", Token: token}, nil
}

// SetPassword completes a GitHub-created account. It is a one-time operation;
// accounts that already have a password use a separate change-password flow.
func (s *DeveloperService) SetPassword(ctx context.Context, db *gorm.DB, developerID, password string) error {
	dev, err := s.repo.FindByID(db, developerID)
	if err != nil {
		if errors.Is(err, repositories.ErrDeveloperNotFound) {
			return apperrors.ErrDeveloperNotFound
		}
		return apperrors.InternalError(err)
	}
	if dev.PasswordSet() {
		return apperrors.ErrPasswordAlreadySet
	}
	if err := auth.ValidatePassword(password); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.repo.SetPassword(db, developerID, hash); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "developer password set", "developer_id", developerID)
	return nil
}

func (s *DeveloperService) GetProfile(ctx context.Context, db *gorm.DB, id string) (*dto.DeveloperProfile, error) {
	dev, err := s.repo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDeveloperNotFound) {
			return nil, apperrors.ErrDeveloperNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return formatDeveloperProfile(dev), nil
}

func (s *DeveloperService) UpdateProfile(ctx context.Context, db *gorm.DB, id string, req dto.UpdateDeveloperProfileRequest) (*dto.DeveloperProfile, error) {
	dev, err := s.repo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDeveloperNotFound) {
			return nil, apperrors.ErrDeveloperNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	applyDeveloperUpdate(dev, req)

	if err := s.repo.Update(db, dev); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "developer profile updated", "developer_id", id)
	return formatDeveloperProfile(dev), nil
}

// LoginWithGithub links or creates the account for an authenticated GitHub
// user. Match order: GitHub id first, then email (linking a pre-existing
// password account), then a fresh account.
func (s *DeveloperService) LoginWithGithub(ctx context.Context, db *gorm.DB, ghUser *oauth.GithubUser) (*dto.GithubAuthResult, error) {
	dev, err := s.repo.FindByGithubID(db, ghUser.ID)
	if errors.Is(err, repositories.ErrDeveloperNotFound) {
		dev, err = s.repo.FindByEmail(db, ghUser.Email)
		if err == nil {
			githubID := ghUser.ID
			dev.GithubID = &githubID
			if dev.AvatarURL == "" {
				dev.AvatarURL = ghUser.AvatarURL
			}
			if err := s.repo.Update(db, dev); err != nil {
				return nil, apperrors.InternalError(err)
			}
		} else if errors.Is(err, repositories.ErrDeveloperNotFound) {
			dev, err = s.createFromGithub(db, ghUser)
			if err != nil {
				return nil, err
			}
		} else {
			return nil, apperrors.InternalError(err)
		}
	} else if err != nil {
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(dev.ID, string(models.RoleDeveloper))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "developer github login", "developer_id", dev.ID)
	return &dto.GithubAuthResult{
		Token:       token,
		PasswordSet: dev.PasswordSet(),
		Email:       dev.Email,
	}, nil
}

func (s *DeveloperService) createFromGithub(db *gorm.DB, ghUser *oauth.GithubUser) (*models.Developer, error) {
	githubID := ghUser.ID
	dev := &models.Developer{
		GithubID:  &githubID,
		Name:      ghUser.Name,
		Email:     ghUser.Email,
		AvatarURL: ghUser.AvatarURL,
		Bio:       ghUser.Bio,
		Location:  ghUser.Location,
		GithubURL: ghUser.HTMLURL,
	}
	if err := s.repo.Create(db, dev); err != nil {
		if errors.Is(err, repositories.ErrDeveloperAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}
	return dev, nil
}

func applyDeveloperUpdate(dev *models.Developer, req dto.UpdateDeveloperProfileRequest) {
	if req.Name != nil {
		dev.Name = *req.Name
	}
	if req.Title != nil {
		dev.Title = *req.Title
	}
	if req.Location != nil {
		dev.Location = *req.Location
	}
	if req.YearsOfExperience != nil {
		dev.YearsOfExperience = *req.YearsOfExperience
	}
	if req.Bio != nil {
		dev.Bio = *req.Bio
	}
	if req.Skills != nil {
		dev.Skills = req.Skills
	}
	if req.TopSkills != nil {
		dev.TopSkills = req.TopSkills
	}
	if req.GithubURL != nil {
		dev.GithubURL = *req.GithubURL
	}
	if req.LinkedinURL != nil {
		dev.LinkedinURL = *req.LinkedinURL
	}
	if req.PersonalWebsite != nil {
		dev.PersonalWebsite = *req.PersonalWebsite
	}
	if req.Education != nil {
		dev.Education = req.Education
	}
	if req.WorkExperience != nil {
		dev.WorkExperience = req.WorkExperience
	}
	if req.Projects != nil {
		dev.Projects = req.Projects
	}
	if req.Achievements != nil {
		dev.Achievements = req.Achievements
	}
	if req.Languages != nil {
		dev.Languages = req.Languages
	}
}

// formatDeveloperProfile shapes the stored record into the client document:
// zero defaults for every field, never null arrays, placeholder avatar.
func formatDeveloperProfile(dev *models.Developer) *dto.DeveloperProfile {
	avatar := dev.AvatarURL
	if avatar == "" {
		avatar = defaultAvatar
	}
	return &dto.DeveloperProfile{
		ID:                dev.ID,
		Name:              dev.Name,
		Avatar:            avatar,
		Title:             dev.Title,
		Location:          dev.Location,
		YearsOfExperience: dev.YearsOfExperience,
		Bio:               dev.Bio,
		Skills:            nonNil(dev.Skills),
		TopSkills:         nonNil(dev.TopSkills),
		GithubURL:         dev.GithubURL,
		LinkedinURL:       dev.LinkedinURL,
		PersonalWebsite:   dev.PersonalWebsite,
		Email:             dev.Email,
		Education:         nonNil(dev.Education),
		WorkExperience:    nonNil(dev.WorkExperience),
		Projects:          nonNil(dev.Projects),
		Achievements:      nonNil(dev.Achievements),
		Languages:         nonNil(dev.Languages),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
