package service

import (
	"context"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// ProjectRepository описывает взаимодействие сервиса с хранилищем проектов.
type ProjectRepository interface {
	Create(ctx context.Context, p *models.Project) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	List(ctx context.Context, page common.Page) ([]models.Project, error)
	ListByOwner(ctx context.Context, userID int64, page common.Page) ([]models.Project, error)
	Update(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id string) (*models.Project, error)
}

// ProjectService содержит бизнес-логику работы с проектами.
type ProjectService struct {
	repo ProjectRepository
}

// NewProjectService создаёт сервис проектов.
func NewProjectService(repo ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// ListProjects возвращает проекты.
func (s *ProjectService) ListProjects(ctx context.Context, userID *int64, page common.Page) ([]models.Project, error) {
	if userID != nil {
		return s.repo.ListByOwner(ctx, *userID, page)
	}
	return s.repo.List(ctx, page)
}

// GetProject возвращает проект.
func (s *ProjectService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProject создаёт проект.
func (s *ProjectService) CreateProject(ctx context.Context, in dto.ProjectInput) (*models.Project, error) {
	if err := required("title", in.Title); err != nil {
		return nil, err
	}

	p := &models.Project{Technologies: models.StringList{}}
	if err := applyProjectInput(p, in); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProject применяет только переданные поля.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, in dto.ProjectInput) (*models.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyProjectInput(p, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProject удаляет проект.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) (*models.Project, error) {
	return s.repo.Delete(ctx, id)
}

func applyProjectInput(p *models.Project, in dto.ProjectInput) error {
	if err := applyNonEmpty("title", &p.Title, in.Title); err != nil {
		return err
	}
	applyOwner(&p.UserID, in.UserID)
	applyOptional(&p.Description, in.Description)
	applyList(&p.Technologies, in.Technologies)
	applyOptional(&p.ImageURL, in.ImageURL)
	applyOptional(&p.GithubURL, in.GithubURL)
	applyOptional(&p.LiveURL, in.LiveURL)
	apply(&p.Featured, in.Featured)
	return nil
}
