package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// ErrSkillNotFound возвращается, когда навык не найден.
var ErrSkillNotFound = fmt.Errorf("skill %w", common.ErrNotFound)

const skillColumns = `id, user_id, name, level, category, icon, created_at, updated_at`

// SkillRepository хранит навыки.
type SkillRepository struct {
	db *sqlx.DB
}

// NewSkillRepository создаёт экземпляр репозитория.
func NewSkillRepository(db *sqlx.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// Create сохраняет навык.
func (r *SkillRepository) Create(ctx context.Context, s *models.Skill) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		ownerID, err := resolveOwner(ctx, tx, s.UserID)
		if err != nil {
			return err
		}
		s.UserID = &ownerID
		if err := insertSkill(ctx, tx, s); err != nil {
			return fmt.Errorf("skill repository: create %w", err)
		}
		return nil
	})
}

// GetByID возвращает навык.
func (r *SkillRepository) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	s, err := common.GetOne[models.Skill](ctx, r.db, ErrSkillNotFound,
		`SELECT `+skillColumns+` FROM skills WHERE id = $1`, id)
	if err != nil && !errors.Is(err, ErrSkillNotFound) {
		return nil, fmt.Errorf("skill repository: get by id %w", err)
	}
	return s, err
}

// List возвращает страницу навыков.
func (r *SkillRepository) List(ctx context.Context, page common.Page) ([]models.Skill, error) {
	items, err := common.SelectAll[models.Skill](ctx, r.db,
		`SELECT `+skillColumns+` FROM skills ORDER BY created_at DESC, id DESC OFFSET $1 LIMIT $2`,
		page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("skill repository: list %w", err)
	}
	return items, nil
}

// ListByOwner возвращает навыки пользователя.
func (r *SkillRepository) ListByOwner(ctx context.Context, userID int64, page common.Page) ([]models.Skill, error) {
	items, err := common.SelectAll[models.Skill](ctx, r.db,
		`SELECT `+skillColumns+` FROM skills WHERE user_id = $1
		ORDER BY created_at DESC, id DESC OFFSET $2 LIMIT $3`,
		userID, page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("skill repository: list by owner %w", err)
	}
	return items, nil
}

// Update перезаписывает навык.
func (r *SkillRepository) Update(ctx context.Context, s *models.Skill) error {
	query := `
		UPDATE skills SET
			user_id = :user_id, name = :name, level = :level, category = :category,
			icon = :icon, updated_at = NOW()
		WHERE id = :id
		RETURNING ` + skillColumns

	if err := common.NamedGet(ctx, r.db, query, s, s); err != nil {
		return mapUpdateErr("skill", err, ErrSkillNotFound)
	}
	return nil
}

// Delete удаляет навык и возвращает его.
func (r *SkillRepository) Delete(ctx context.Context, id string) (*models.Skill, error) {
	s, err := common.GetOne[models.Skill](ctx, r.db, ErrSkillNotFound,
		`DELETE FROM skills WHERE id = $1 RETURNING `+skillColumns, id)
	if err != nil && !errors.Is(err, ErrSkillNotFound) {
		return nil, fmt.Errorf("skill repository: delete %w", err)
	}
	return s, err
}

func insertSkill(ctx context.Context, q sqlx.ExtContext, s *models.Skill) error {
	s.ID = uuid.NewString()
	query := `
		INSERT INTO skills (id, user_id, name, level, category, icon)
		VALUES (:id, :user_id, :name, :level, :category, :icon)
		RETURNING ` + skillColumns
	return common.NamedGet(ctx, q, query, s, s)
}
