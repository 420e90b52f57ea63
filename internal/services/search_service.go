package services

import (
	"context"

	"cofoundermatch_backend/internal/models"
	"cofoundermatch_backend/internal/repositories"
	"cofoundermatch_backend/internal/services/dto"
	"cofoundermatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	searchDefaultLimit = 10
	searchMaxLimit     = 100
)

type SearchService struct {
	founderRepo   repositories.FounderRepository
	developerRepo repositories.DeveloperRepository
}

func NewSearchService(founderRepo repositories.FounderRepository, developerRepo repositories.DeveloperRepository) *SearchService {
	return &SearchService{founderRepo: founderRepo, developerRepo: developerRepo}
}

func (s *SearchService) SearchFounders(ctx context.Context, db *gorm.DB, req dto.SearchFoundersRequest) (*dto.FounderSearchResponse, error) {
	page, limit := normalizePagination(req.Page, req.Limit)

	criteria := repositories.FounderSearchCriteria{
		Search:        req.Search,
		Location:      req.Location,
		Stage:         req.Stage,
		Industry:      req.Industry,
		TechStack:     req.TechStack,
		MinFunding:    req.MinFunding,
		MaxFunding:    req.MaxFunding,
		OpenPositions: req.OpenPositions == "true",
		Sort:          req.Sort,
		Page:          page,
		Limit:         limit,
	}

	founders, total, err := s.founderRepo.Search(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.FounderSearchItem, 0, len(founders))
	for i := range founders {
		items = append(items, toFounderSearchItem(&founders[i]))
	}
	return &dto.FounderSearchResponse{
		Founders:   items,
		Pagination: buildPagination(total, page, limit),
	}, nil
}

func (s *SearchService) SearchDevelopers(ctx context.Context, db *gorm.DB, req dto.SearchDevelopersRequest) (*dto.DeveloperSearchResponse, error) {
	page, limit := normalizePagination(req.Page, req.Limit)

	criteria := repositories.DeveloperSearchCriteria{
		Search:        req.Search,
		Location:      req.Location,
		Title:         req.Title,
		Skills:        req.Skills,
		Languages:     req.Languages,
		MinExperience: req.MinExperience,
		MaxExperience: req.MaxExperience,
		Sort:          req.Sort,
		Page:          page,
		Limit:         limit,
	}

	developers, total, err := s.developerRepo.Search(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.DeveloperSearchItem, 0, len(developers))
	for i := range developers {
		items = append(items, toDeveloperSearchItem(&developers[i]))
	}
	return &dto.DeveloperSearchResponse{
		Developers: items,
		Pagination: buildPagination(total, page, limit),
	}, nil
}

func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = searchDefaultLimit
	}
	if limit > searchMaxLimit {
		limit = searchMaxLimit
	}
	return page, limit
}

func buildPagination(total int64, page, limit int) dto.Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return dto.Pagination{
		Total: total,
		Page:  page,
		Pages: pages,
		Limit: limit,
	}
}

func toFounderSearchItem(f *models.Founder) dto.FounderSearchItem {
	return dto.FounderSearchItem{
		ID:            f.ID,
		Name:          f.Name,
		StartupName:   f.StartupName,
		Logo:          f.Logo,
		Tagline:       f.Tagline,
		Stage:         f.Stage,
		FundingAmount: f.FundingAmount,
		EmployeeCount: f.EmployeeCount,
		Founded:       f.Founded,
		Location:      f.Location,
		Industry:      nonNil(f.Industry),
		Website:       f.Website,
		Description:   f.Description,
		TeamMembers:   nonNil(f.TeamMembers),
		TechStack:     nonNil(f.TechStack),
		OpenPositions: nonNil(f.OpenPositions),
		Equity:        f.Equity,
		Benefits:      nonNil(f.Benefits),
		CreatedAt:     f.CreatedAt,
	}
}

func toDeveloperSearchItem(d *models.Developer) dto.DeveloperSearchItem {
	avatar := d.AvatarURL
	if avatar == "" {
		avatar = defaultAvatar
	}
	return dto.DeveloperSearchItem{
		ID:                d.ID,
		Name:              d.Name,
		Avatar:            avatar,
		Title:             d.Title,
		Location:          d.Location,
		YearsOfExperience: d.YearsOfExperience,
		Bio:               d.Bio,
		Skills:            nonNil(d.Skills),
		TopSkills:         nonNil(d.TopSkills),
		GithubURL:         d.GithubURL,
		LinkedinURL:       d.LinkedinURL,
		PersonalWebsite:   d.PersonalWebsite,
		Languages:         nonNil(d.Languages),
		CreatedAt:         d.CreatedAt,
	}
}
