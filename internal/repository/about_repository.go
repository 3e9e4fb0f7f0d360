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

// ErrAboutValueNotFound возвращается, когда карточка не найдена.
var ErrAboutValueNotFound = fmt.Errorf("about value %w", common.ErrNotFound)

const aboutValueColumns = `id, icon, title, subtitle, description, details, order_index, is_active,
	created_at, updated_at`

// AboutValueRepository хранит карточки страницы «Обо мне».
type AboutValueRepository struct {
	db *sqlx.DB
}

// NewAboutValueRepository создаёт экземпляр репозитория.
func NewAboutValueRepository(db *sqlx.DB) *AboutValueRepository {
	return &AboutValueRepository{db: db}
}

// Create сохраняет карточку.
func (r *AboutValueRepository) Create(ctx context.Context, v *models.AboutValue) error {
	v.ID = uuid.NewString()
	query := `
		INSERT INTO about_values (id, icon, title, subtitle, description, details, order_index, is_active)
		VALUES (:id, :icon, :title, :subtitle, :description, :details, :order_index, :is_active)
		RETURNING ` + aboutValueColumns

	if err := common.NamedGet(ctx, r.db, query, v, v); err != nil {
		return fmt.Errorf("about repository: create %w", err)
	}
	return nil
}

// NextOrderIndex возвращает позицию для карточки, добавляемой в конец.
func (r *AboutValueRepository) NextOrderIndex(ctx context.Context) (int, error) {
	var next int
	if err := r.db.GetContext(ctx, &next, `SELECT COALESCE(MAX(order_index) + 1, 0) FROM about_values`); err != nil {
		return 0, fmt.Errorf("about repository: next order index %w", err)
	}
	return next, nil
}

// GetByID возвращает карточку.
func (r *AboutValueRepository) GetByID(ctx context.Context, id string) (*models.AboutValue, error) {
	v, err := common.GetOne[models.AboutValue](ctx, r.db, ErrAboutValueNotFound,
		`SELECT `+aboutValueColumns+` FROM about_values WHERE id = $1`, id)
	if err != nil && !errors.Is(err, ErrAboutValueNotFound) {
		return nil, fmt.Errorf("about repository: get by id %w", err)
	}
	return v, err
}

// List возвращает карточки в порядке отображения.
func (r *AboutValueRepository) List(ctx context.Context, activeOnly bool, page common.Page) ([]models.AboutValue, error) {
	items, err := common.SelectAll[models.AboutValue](ctx, r.db,
		`SELECT `+aboutValueColumns+` FROM about_values
		WHERE is_active OR NOT $1
		ORDER BY order_index, created_at, id OFFSET $2 LIMIT $3`,
		activeOnly, page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("about repository: list %w", err)
	}
	return items, nil
}

// Update перезаписывает карточку.
func (r *AboutValueRepository) Update(ctx context.Context, v *models.AboutValue) error {
	query := `
		UPDATE about_values SET
			icon = :icon, title = :title, subtitle = :subtitle, description = :description,
			details = :details, order_index = :order_index, is_active = :is_active,
			updated_at = NOW()
		WHERE id = :id
		RETURNING ` + aboutValueColumns

	if err := common.NamedGet(ctx, r.db, query, v, v); err != nil {
		return mapUpdateErr("about", err, ErrAboutValueNotFound)
	}
	return nil
}

// Delete удаляет карточку и возвращает её.
func (r *AboutValueRepository) Delete(ctx context.Context, id string) (*models.AboutValue, error) {
	v, err := common.GetOne[models.AboutValue](ctx, r.db, ErrAboutValueNotFound,
		`DELETE FROM about_values WHERE id = $1 RETURNING `+aboutValueColumns, id)
	if err != nil && !errors.Is(err, ErrAboutValueNotFound) {
		return nil, fmt.Errorf("about repository: delete %w", err)
	}
	return v, err
}

// Reorder выставляет order_index по позиции идентификатора в списке.
// Если хотя бы одна карточка не найдена, порядок не меняется.
func (r *AboutValueRepository) Reorder(ctx context.Context, orderedIDs []string) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		for i, id := range orderedIDs {
			res, err := tx.ExecContext(ctx,
				`UPDATE about_values SET order_index = $1, updated_at = NOW() WHERE id = $2`, i, id)
			if err != nil {
				return fmt.Errorf("about repository: reorder %w", err)
			}
			affected, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("about repository: reorder rows affected %w", err)
			}
			if affected == 0 {
				return ErrAboutValueNotFound
			}
		}
		return nil
	})
}
