package service

import (
	"context"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// CompetitionRepository описывает взаимодействие сервиса с хранилищем конкурсов.
type CompetitionRepository interface {
	Create(ctx context.Context, c *models.Competition) error
	GetByID(ctx context.Context, id int64) (*models.Competition, error)
	List(ctx context.Context, page common.Page) ([]models.Competition, error)
	ListByOwner(ctx context.Context, userID int64, page common.Page) ([]models.Competition, error)
	Update(ctx context.Context, c *models.Competition) error
	Delete(ctx context.Context, id int64) (*models.Competition, error)
}

// CompetitionService содержит бизнес-логику работы с конкурсами.
type CompetitionService struct {
	repo CompetitionRepository
}

// NewCompetitionService создаёт сервис конкурсов.
func NewCompetitionService(repo CompetitionRepository) *CompetitionService {
	return &CompetitionService{repo: repo}
}

// ListCompetitions возвращает конкурсы, при userID только конкурсы этого пользователя.
func (s *CompetitionService) ListCompetitions(ctx context.Context, userID *int64, page common.Page) ([]models.Competition, error) {
	if userID != nil {
		return s.repo.ListByOwner(ctx, *userID, page)
	}
	return s.repo.List(ctx, page)
}

// GetCompetition возвращает конкурс по строковому идентификатору.
func (s *CompetitionService) GetCompetition(ctx context.Context, id string) (*models.Competition, error) {
	competitionID, err := parseIntID(id, repository.ErrCompetitionNotFound)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, competitionID)
}

// CreateCompetition создаёт конкурс. Обязательно только название.
func (s *CompetitionService) CreateCompetition(ctx context.Context, in dto.CompetitionInput) (*models.Competition, error) {
	if err := required("name", in.Name); err != nil {
		return nil, err
	}

	c := &models.Competition{
		Result:        models.CompetitionDefaultResult,
		Category:      models.CompetitionDefaultCategory,
		Featured:      true,
		TeamSize:      models.CompetitionDefaultTeamSize,
		ProjectImages: models.StringList{},
		Technologies:  models.StringList{},
	}
	if err := applyCompetitionInput(c, in); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCompetition применяет только переданные поля.
func (s *CompetitionService) UpdateCompetition(ctx context.Context, id string, in dto.CompetitionInput) (*models.Competition, error) {
	c, err := s.GetCompetition(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyCompetitionInput(c, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCompetition удаляет конкурс.
func (s *CompetitionService) DeleteCompetition(ctx context.Context, id string) (*models.Competition, error) {
	competitionID, err := parseIntID(id, repository.ErrCompetitionNotFound)
	if err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, competitionID)
}

func applyCompetitionInput(c *models.Competition, in dto.CompetitionInput) error {
	if err := applyNonEmpty("name", &c.Name, in.Name); err != nil {
		return err
	}
	if in.Result != nil && *in.Result != "" {
		c.Result = *in.Result
	}
	if in.Category != nil && *in.Category != "" {
		c.Category = *in.Category
	}
	applyOwner(&c.UserID, in.UserID)
	applyOptional(&c.Description, in.Description)
	applyOptional(&c.DetailedDescription, in.DetailedDescription)
	applyDate(&c.Date, in.Date)
	applyOptional(&c.CertificateURL, in.CertificateURL)
	applyList(&c.ProjectImages, in.ProjectImages)
	apply(&c.Featured, in.Featured)
	applyOptional(&c.Organizer, in.Organizer)
	applyOptional(&c.Location, in.Location)
	applyOptional(&c.Award, in.Award)
	apply(&c.TeamSize, in.TeamSize)
	applyOptional(&c.Role, in.Role)
	applyList(&c.Technologies, in.Technologies)
	applyOptional(&c.ProjectURL, in.ProjectURL)
	return nil
}
