package service

import (
	"context"
	"strings"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// PatentRepository описывает взаимодействие сервиса с хранилищем патентов.
type PatentRepository interface {
	Create(ctx context.Context, p *models.Patent) error
	GetByID(ctx context.Context, id string) (*models.Patent, error)
	List(ctx context.Context, page common.Page) ([]models.Patent, error)
	ListByOwner(ctx context.Context, userID int64, page common.Page) ([]models.Patent, error)
	ListByCategory(ctx context.Context, category string, page common.Page) ([]models.Patent, error)
	Update(ctx context.Context, p *models.Patent) error
	Delete(ctx context.Context, id string) (*models.Patent, error)
}

// PatentFilter условия выборки патентов. UserID важнее Category.
type PatentFilter struct {
	UserID   *int64
	Category string
}

// PatentService содержит бизнес-логику работы с патентами.
type PatentService struct {
	repo PatentRepository
}

// NewPatentService создаёт сервис патентов.
func NewPatentService(repo PatentRepository) *PatentService {
	return &PatentService{repo: repo}
}

// ListPatents возвращает патенты с учётом фильтра.
func (s *PatentService) ListPatents(ctx context.Context, filter PatentFilter, page common.Page) ([]models.Patent, error) {
	switch {
	case filter.UserID != nil:
		return s.repo.ListByOwner(ctx, *filter.UserID, page)
	case strings.TrimSpace(filter.Category) != "":
		return s.repo.ListByCategory(ctx, strings.TrimSpace(filter.Category), page)
	default:
		return s.repo.List(ctx, page)
	}
}

// GetPatent возвращает патент по идентификатору.
func (s *PatentService) GetPatent(ctx context.Context, id string) (*models.Patent, error) {
	return s.repo.GetByID(ctx, id)
}

// CreatePatent создаёт патент. Обязателен только заголовок.
func (s *PatentService) CreatePatent(ctx context.Context, in dto.PatentInput) (*models.Patent, error) {
	if err := required("title", in.Title); err != nil {
		return nil, err
	}

	p := &models.Patent{
		Category:  models.PatentCategoryInvention,
		Status:    models.PatentStatusPending,
		Inventors: models.StringList{},
	}
	if err := applyPatentInput(p, in); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePatent применяет только переданные поля.
func (s *PatentService) UpdatePatent(ctx context.Context, id string, in dto.PatentInput) (*models.Patent, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyPatentInput(p, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePatent удаляет патент и возвращает его последнее состояние.
func (s *PatentService) DeletePatent(ctx context.Context, id string) (*models.Patent, error) {
	return s.repo.Delete(ctx, id)
}

func applyPatentInput(p *models.Patent, in dto.PatentInput) error {
	if err := applyNonEmpty("title", &p.Title, in.Title); err != nil {
		return err
	}
	if in.Category != nil && *in.Category != "" {
		p.Category = *in.Category
	}
	if in.Status != nil && *in.Status != "" {
		p.Status = *in.Status
	}
	applyOwner(&p.UserID, in.UserID)
	applyOptional(&p.PatentNumber, in.PatentNumber)
	applyOptional(&p.Description, in.Description)
	applyDate(&p.FilingDate, in.FilingDate)
	applyDate(&p.GrantDate, in.GrantDate)
	applyDate(&p.PublicationDate, in.PublicationDate)
	applyDate(&p.PriorityDate, in.PriorityDate)
	applyList(&p.Inventors, in.Inventors)
	applyOptional(&p.Assignee, in.Assignee)
	applyOptional(&p.Country, in.Country)
	applyOptional(&p.PatentURL, in.PatentURL)
	applyOptional(&p.Classification, in.Classification)
	apply(&p.Featured, in.Featured)
	return nil
}
