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

// ErrProjectNotFound возвращается, когда проект не найден.
var ErrProjectNotFound = fmt.Errorf("project %w", common.ErrNotFound)

const projectColumns = `id, user_id, title, description, technologies, image_url, github_url,
	live_url, featured, created_at, updated_at`

// ProjectRepository хранит проекты портфолио.
type ProjectRepository struct {
	db *sqlx.DB
}

// NewProjectRepository создаёт экземпляр репозитория.
func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create сохраняет проект.
func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		ownerID, err := resolveOwner(ctx, tx, p.UserID)
		if err != nil {
			return err
		}
		p.UserID = &ownerID
		if err := insertProject(ctx, tx, p); err != nil {
			return fmt.Errorf("project repository: create %w", err)
		}
		return nil
	})
}

// GetByID возвращает проект.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	p, err := common.GetOne[models.Project](ctx, r.db, ErrProjectNotFound,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	if err != nil && !errors.Is(err, ErrProjectNotFound) {
		return nil, fmt.Errorf("project repository: get by id %w", err)
	}
	return p, err
}

// List возвращает страницу проектов.
func (r *ProjectRepository) List(ctx context.Context, page common.Page) ([]models.Project, error) {
	items, err := common.SelectAll[models.Project](ctx, r.db,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC, id DESC OFFSET $1 LIMIT $2`,
		page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("project repository: list %w", err)
	}
	return items, nil
}

// ListByOwner возвращает проекты пользователя.
func (r *ProjectRepository) ListByOwner(ctx context.Context, userID int64, page common.Page) ([]models.Project, error) {
	items, err := common.SelectAll[models.Project](ctx, r.db,
		`SELECT `+projectColumns+` FROM projects WHERE user_id = $1
		ORDER BY created_at DESC, id DESC OFFSET $2 LIMIT $3`,
		userID, page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("project repository: list by owner %w", err)
	}
	return items, nil
}

// Update перезаписывает проект.
func (r *ProjectRepository) Update(ctx context.Context, p *models.Project) error {
	query := `
		UPDATE projects SET
			user_id = :user_id, title = :title, description = :description,
			technologies = :technologies, image_url = :image_url, github_url = :github_url,
			live_url = :live_url, featured = :featured, updated_at = NOW()
		WHERE id = :id
		RETURNING ` + projectColumns

	if err := common.NamedGet(ctx, r.db, query, p, p); err != nil {
		return mapUpdateErr("project", err, ErrProjectNotFound)
	}
	return nil
}

// Delete удаляет проект и возвращает его.
func (r *ProjectRepository) Delete(ctx context.Context, id string) (*models.Project, error) {
	p, err := common.GetOne[models.Project](ctx, r.db, ErrProjectNotFound,
		`DELETE FROM projects WHERE id = $1 RETURNING `+projectColumns, id)
	if err != nil && !errors.Is(err, ErrProjectNotFound) {
		return nil, fmt.Errorf("project repository: delete %w", err)
	}
	return p, err
}

func insertProject(ctx context.Context, q sqlx.ExtContext, p *models.Project) error {
	p.ID = uuid.NewString()
	query := `
		INSERT INTO projects (id, user_id, title, description, technologies, image_url, github_url, live_url, featured)
		VALUES (:id, :user_id, :title, :description, :technologies, :image_url, :github_url, :live_url, :featured)
		RETURNING ` + projectColumns
	return common.NamedGet(ctx, q, query, p, p)
}
