package services

import (
	"context"
	"errors"

	"cofoundermatch_backend/internal/auth"
	"cofoundermatch_backend/internal/logger"
	"cofoundermatch_backend/internal/models"
	"cofoundermatch_backend/internal/repositories"
	"cofoundermatch_backend/internal/services/dto"
	"cofoundermatch_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FounderService struct {
	repo repositories.FounderRepository
}

func NewFounderService(repo repositories.FounderRepository) *FounderService {
	return &FounderService{repo: repo}
}

func (s *FounderService) Signup(ctx context.Context, db *gorm.DB, req dto.FounderSignupRequest) (*dto.AuthResponse, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	founder := &models.Founder{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		StartupName:  req.StartupName,
		Tagline:      req.Tagline,
		Stage:        req.Stage,
		Location:     req.Location,
	}

	if err := s.repo.Create(db, founder); err != nil {
		if errors.Is(err, repositories.ErrFounderAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(founder.ID, string(models.RoleFounder))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "founder registered", "founder_id", founder.ID)
	return &dto.AuthResponse{Message: "Founder registered successfully", Token: token}, nil
}

// Login additionally requires a verified phone number. An unverified account
// fails exactly like a wrong password, so the response does not reveal which
// check missed.
func (s *FounderService) Login(ctx context.Context, db *gorm.DB, req dto.LoginRequest) (*dto.AuthResponse, error) {
	founder, err := s.repo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrFounderNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, founder.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !founder.IsPhoneVerified {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(founder.ID, string(models.RoleFounder))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "founder logged in", "founder_id", founder.ID)
	return &dto.AuthResponse{Message: "Login successful", Token: token}, nil
}

func (s *FounderService) GetByID(ctx context.Context, db *gorm.DB, id string) (*models.Founder, error) {
	founder, err := s.repo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrFounderNotFound) {
			return nil, apperrors.ErrFounderNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return founder, nil
}

func (s *FounderService) UpdateProfile(ctx context.Context, db *gorm.DB, id string, req dto.UpdateFounderProfileRequest) (*dto.FounderProfileResponse, error) {
	founder, err := s.repo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrFounderNotFound) {
			return nil, apperrors.ErrFounderNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	applyFounderUpdate(founder, req)

	if err := s.repo.Update(db, founder); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "founder profile updated", "founder_id", id)
	return &dto.FounderProfileResponse{
		Message: "Profile updated successfully",
		Founder: founder,
	}, nil
}

func applyFounderUpdate(founder *models.Founder, req dto.UpdateFounderProfileRequest) {
	if req.StartupName != nil {
		founder.StartupName = *req.StartupName
	}
	if req.Logo != nil {
		founder.Logo = *req.Logo
	}
	if req.Tagline != nil {
		founder.Tagline = *req.Tagline
	}
	if req.Stage != nil {
		founder.Stage = *req.Stage
	}
	if req.FundingAmount != nil {
		founder.FundingAmount = *req.FundingAmount
	}
	if req.EmployeeCount != nil {
		founder.EmployeeCount = *req.EmployeeCount
	}
	if req.Founded != nil {
		founder.Founded = *req.Founded
	}
	if req.Location != nil {
		founder.Location = *req.Location
	}
	if req.Industry != nil {
		founder.Industry = req.Industry
	}
	if req.Website != nil {
		founder.Website = *req.Website
	}
	if req.Description != nil {
		founder.Description = *req.Description
	}
	if req.Problem != nil {
		founder.Problem = *req.Problem
	}
	if req.Solution != nil {
		founder.Solution = *req.Solution
	}
	if req.Traction != nil {
		founder.Traction = *req.Traction
	}
	if req.BusinessModel != nil {
		founder.BusinessModel = *req.BusinessModel
	}
	if req.Market != nil {
		founder.Market = *req.Market
	}
	if req.Competition != nil {
		founder.Competition = *req.Competition
	}
	if req.TeamMembers != nil {
		founder.TeamMembers = req.TeamMembers
	}
	if req.TechStack != nil {
		founder.TechStack = req.TechStack
	}
	if req.OpenPositions != nil {
		founder.OpenPositions = req.OpenPositions
	}
	if req.Equity != nil {
		founder.Equity = *req.Equity
	}
	if req.Benefits != nil {
		founder.Benefits = req.Benefits
	}
	if req.Culture != nil {
		founder.Culture = *req.Culture
	}
	if req.Vision != nil {
		founder.Vision = *req.Vision
	}
	if req.ContactEmail != nil {
		founder.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		founder.ContactPhone = *req.ContactPhone
	}
	if req.SocialLinks != nil {
		founder.SocialLinks = datatypes.NewJSONType(*req.SocialLinks)
	}
}
