package service

import (
	"context"
	"strings"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// AboutValueRepository описывает взаимодействие сервиса с карточками «Обо мне».
type AboutValueRepository interface {
	Create(ctx context.Context, v *models.AboutValue) error
	NextOrderIndex(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id string) (*models.AboutValue, error)
	List(ctx context.Context, activeOnly bool, page common.Page) ([]models.AboutValue, error)
	Update(ctx context.Context, v *models.AboutValue) error
	Delete(ctx context.Context, id string) (*models.AboutValue, error)
	Reorder(ctx context.Context, orderedIDs []string) error
}

// AboutValueService упорядоченные карточки ценностей.
type AboutValueService struct {
	repo AboutValueRepository
}

// NewAboutValueService создаёт сервис карточек.
func NewAboutValueService(repo AboutValueRepository) *AboutValueService {
	return &AboutValueService{repo: repo}
}

// ListValues возвращает карточки в порядке отображения.
func (s *AboutValueService) ListValues(ctx context.Context, activeOnly bool, page common.Page) ([]models.AboutValue, error) {
	return s.repo.List(ctx, activeOnly, page)
}

// GetValue возвращает карточку.
func (s *AboutValueService) GetValue(ctx context.Context, id string) (*models.AboutValue, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateValue создаёт карточку. Без orderIndex она добавляется в конец списка.
func (s *AboutValueService) CreateValue(ctx context.Context, in dto.AboutValueInput) (*models.AboutValue, error) {
	if err := required("title", in.Title); err != nil {
		return nil, err
	}

	v := &models.AboutValue{
		IsActive: true,
		Details:  models.StringList{},
	}
	if err := applyAboutValueInput(v, in); err != nil {
		return nil, err
	}

	if in.OrderIndex == nil {
		next, err := s.repo.NextOrderIndex(ctx)
		if err != nil {
			return nil, err
		}
		v.OrderIndex = next
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// UpdateValue применяет только переданные поля.
func (s *AboutValueService) UpdateValue(ctx context.Context, id string, in dto.AboutValueInput) (*models.AboutValue, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyAboutValueInput(v, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// DeleteValue удаляет карточку.
func (s *AboutValueService) DeleteValue(ctx context.Context, id string) (*models.AboutValue, error) {
	return s.repo.Delete(ctx, id)
}

// Reorder выставляет карточкам порядок согласно списку идентификаторов.
func (s *AboutValueService) Reorder(ctx context.Context, orderedIDs []string) error {
	if len(orderedIDs) == 0 {
		return apperror.Validation("список orderedIds не может быть пустым")
	}
	ids := make([]string, 0, len(orderedIDs))
	seen := make(map[string]struct{}, len(orderedIDs))
	for _, id := range orderedIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return apperror.Validation("пустой идентификатор в orderedIds")
		}
		if _, dup := seen[id]; dup {
			return apperror.Validation("идентификатор %s повторяется в orderedIds", id)
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return s.repo.Reorder(ctx, ids)
}

func applyAboutValueInput(v *models.AboutValue, in dto.AboutValueInput) error {
	if err := applyNonEmpty("title", &v.Title, in.Title); err != nil {
		return err
	}
	applyOptional(&v.Icon, in.Icon)
	applyOptional(&v.Subtitle, in.Subtitle)
	applyOptional(&v.Description, in.Description)
	applyList(&v.Details, in.Details)
	apply(&v.OrderIndex, in.OrderIndex)
	apply(&v.IsActive, in.IsActive)
	return nil
}
