package service

import (
	"context"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// SkillRepository описывает взаимодействие сервиса с хранилищем навыков.
type SkillRepository interface {
	Create(ctx context.Context, s *models.Skill) error
	GetByID(ctx context.Context, id string) (*models.Skill, error)
	List(ctx context.Context, page common.Page) ([]models.Skill, error)
	ListByOwner(ctx context.Context, userID int64, page common.Page) ([]models.Skill, error)
	Update(ctx context.Context, s *models.Skill) error
	Delete(ctx context.Context, id string) (*models.Skill, error)
}

// SkillService навыки владельца.
type SkillService struct {
	repo SkillRepository
}

// NewSkillService создаёт сервис навыков.
func NewSkillService(repo SkillRepository) *SkillService {
	return &SkillService{repo: repo}
}

// ListSkills возвращает навыки.
func (s *SkillService) ListSkills(ctx context.Context, userID *int64, page common.Page) ([]models.Skill, error) {
	if userID != nil {
		return s.repo.ListByOwner(ctx, *userID, page)
	}
	return s.repo.List(ctx, page)
}

// GetSkill возвращает навык.
func (s *SkillService) GetSkill(ctx context.Context, id string) (*models.Skill, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateSkill создаёт навык с уровнем 50 и категорией other по умолчанию.
func (s *SkillService) CreateSkill(ctx context.Context, in dto.SkillInput) (*models.Skill, error) {
	if err := required("name", in.Name); err != nil {
		return nil, err
	}

	skill := &models.Skill{
		Level:    models.SkillDefaultLevel,
		Category: models.SkillDefaultCategory,
	}
	if err := applySkillInput(skill, in); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// UpdateSkill применяет только переданные поля.
func (s *SkillService) UpdateSkill(ctx context.Context, id string, in dto.SkillInput) (*models.Skill, error) {
	skill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applySkillInput(skill, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// DeleteSkill удаляет навык.
func (s *SkillService) DeleteSkill(ctx context.Context, id string) (*models.Skill, error) {
	return s.repo.Delete(ctx, id)
}

func applySkillInput(skill *models.Skill, in dto.SkillInput) error {
	if err := applyNonEmpty("name", &skill.Name, in.Name); err != nil {
		return err
	}
	if in.Level != nil {
		if *in.Level < models.SkillMinLevel || *in.Level > models.SkillMaxLevel {
			return apperror.Validation("уровень навыка должен быть от %d до %d", models.SkillMinLevel, models.SkillMaxLevel)
		}
		skill.Level = *in.Level
	}
	if in.Category != nil && *in.Category != "" {
		skill.Category = *in.Category
	}
	applyOwner(&skill.UserID, in.UserID)
	applyOptional(&skill.Icon, in.Icon)
	return nil
}
