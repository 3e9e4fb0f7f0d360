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

// ErrPatentNotFound возвращается, когда патент не найден.
var ErrPatentNotFound = fmt.Errorf("patent %w", common.ErrNotFound)

const patentColumns = `id, user_id, title, patent_number, description, category, status,
	filing_date, grant_date, publication_date, priority_date, inventors, assignee, country,
	patent_url, classification, featured, created_at, updated_at`

// PatentRepository отвечает за хранение патентов.
type PatentRepository struct {
	db *sqlx.DB
}

// NewPatentRepository создаёт экземпляр репозитория.
func NewPatentRepository(db *sqlx.DB) *PatentRepository {
	return &PatentRepository{db: db}
}

// Create сохраняет патент. Владелец определяется в той же транзакции.
func (r *PatentRepository) Create(ctx context.Context, p *models.Patent) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		ownerID, err := resolveOwner(ctx, tx, p.UserID)
		if err != nil {
			return err
		}
		p.UserID = &ownerID
		if err := insertPatent(ctx, tx, p); err != nil {
			return fmt.Errorf("patent repository: create %w", err)
		}
		return nil
	})
}

// GetByID возвращает патент по идентификатору.
func (r *PatentRepository) GetByID(ctx context.Context, id string) (*models.Patent, error) {
	p, err := common.GetOne[models.Patent](ctx, r.db, ErrPatentNotFound,
		`SELECT `+patentColumns+` FROM patents WHERE id = $1`, id)
	if err != nil && !errors.Is(err, ErrPatentNotFound) {
		return nil, fmt.Errorf("patent repository: get by id %w", err)
	}
	return p, err
}

// List возвращает страницу патентов, новые первыми.
func (r *PatentRepository) List(ctx context.Context, page common.Page) ([]models.Patent, error) {
	items, err := common.SelectAll[models.Patent](ctx, r.db,
		`SELECT `+patentColumns+` FROM patents ORDER BY created_at DESC, id DESC OFFSET $1 LIMIT $2`,
		page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("patent repository: list %w", err)
	}
	return items, nil
}

// ListByOwner возвращает патенты пользователя.
func (r *PatentRepository) ListByOwner(ctx context.Context, userID int64, page common.Page) ([]models.Patent, error) {
	items, err := common.SelectAll[models.Patent](ctx, r.db,
		`SELECT `+patentColumns+` FROM patents WHERE user_id = $1
		ORDER BY created_at DESC, id DESC OFFSET $2 LIMIT $3`,
		userID, page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("patent repository: list by owner %w", err)
	}
	return items, nil
}

// ListByCategory возвращает патенты одной категории.
func (r *PatentRepository) ListByCategory(ctx context.Context, category string, page common.Page) ([]models.Patent, error) {
	items, err := common.SelectAll[models.Patent](ctx, r.db,
		`SELECT `+patentColumns+` FROM patents WHERE category = $1
		ORDER BY created_at DESC, id DESC OFFSET $2 LIMIT $3`,
		category, page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("patent repository: list by category %w", err)
	}
	return items, nil
}

// Update перезаписывает патент целиком и обновляет updated_at.
func (r *PatentRepository) Update(ctx context.Context, p *models.Patent) error {
	query := `
		UPDATE patents SET
			user_id = :user_id, title = :title, patent_number = :patent_number,
			description = :description, category = :category, status = :status,
			filing_date = :filing_date, grant_date = :grant_date,
			publication_date = :publication_date, priority_date = :priority_date,
			inventors = :inventors, assignee = :assignee, country = :country,
			patent_url = :patent_url, classification = :classification,
			featured = :featured, updated_at = NOW()
		WHERE id = :id
		RETURNING ` + patentColumns

	if err := common.NamedGet(ctx, r.db, query, p, p); err != nil {
		return mapUpdateErr("patent", err, ErrPatentNotFound)
	}
	return nil
}

// Delete удаляет патент и возвращает удалённую запись.
func (r *PatentRepository) Delete(ctx context.Context, id string) (*models.Patent, error) {
	p, err := common.GetOne[models.Patent](ctx, r.db, ErrPatentNotFound,
		`DELETE FROM patents WHERE id = $1 RETURNING `+patentColumns, id)
	if err != nil && !errors.Is(err, ErrPatentNotFound) {
		return nil, fmt.Errorf("patent repository: delete %w", err)
	}
	return p, err
}

func insertPatent(ctx context.Context, q sqlx.ExtContext, p *models.Patent) error {
	p.ID = uuid.NewString()
	query := `
		INSERT INTO patents (
			id, user_id, title, patent_number, description, category, status,
			filing_date, grant_date, publication_date, priority_date, inventors,
			assignee, country, patent_url, classification, featured
		) VALUES (
			:id, :user_id, :title, :patent_number, :description, :category, :status,
			:filing_date, :grant_date, :publication_date, :priority_date, :inventors,
			:assignee, :country, :patent_url, :classification, :featured
		)
		RETURNING ` + patentColumns
	return common.NamedGet(ctx, q, query, p, p)
}

// mapUpdateErr переводит ошибки UPDATE ... RETURNING в доменные.
func mapUpdateErr(entity string, err error, notFound error) error {
	switch {
	case isNoRows(err):
		return notFound
	case common.IsForeignKeyViolation(err):
		return ErrOwnerNotFound
	}
	return fmt.Errorf("%s repository: update %w", entity, err)
}
