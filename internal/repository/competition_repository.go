package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// ErrCompetitionNotFound возвращается, когда конкурс не найден.
var ErrCompetitionNotFound = fmt.Errorf("competition %w", common.ErrNotFound)

// competition_name не выбирается: это копия name для старых клиентов.
const competitionColumns = `id, user_id, name, result, description, detailed_description, date,
	certificate_url, project_images, category, featured, organizer, location, award, team_size,
	role, technologies, project_url, created_at, updated_at`

// CompetitionRepository отвечает за хранение конкурсов.
type CompetitionRepository struct {
	db *sqlx.DB
}

// NewCompetitionRepository создаёт экземпляр репозитория.
func NewCompetitionRepository(db *sqlx.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

// Create сохраняет конкурс вместе с определением владельца.
func (r *CompetitionRepository) Create(ctx context.Context, c *models.Competition) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		ownerID, err := resolveOwner(ctx, tx, c.UserID)
		if err != nil {
			return err
		}
		c.UserID = &ownerID
		if err := insertCompetition(ctx, tx, c); err != nil {
			return fmt.Errorf("competition repository: create %w", err)
		}
		return nil
	})
}

// GetByID возвращает конкурс по идентификатору.
func (r *CompetitionRepository) GetByID(ctx context.Context, id int64) (*models.Competition, error) {
	c, err := common.GetOne[models.Competition](ctx, r.db, ErrCompetitionNotFound,
		`SELECT `+competitionColumns+` FROM competitions WHERE id = $1`, id)
	if err != nil && !errors.Is(err, ErrCompetitionNotFound) {
		return nil, fmt.Errorf("competition repository: get by id %w", err)
	}
	return c, err
}

// List возвращает страницу конкурсов, свежие по дате первыми.
func (r *CompetitionRepository) List(ctx context.Context, page common.Page) ([]models.Competition, error) {
	items, err := common.SelectAll[models.Competition](ctx, r.db,
		`SELECT `+competitionColumns+` FROM competitions
		ORDER BY date DESC NULLS LAST, id DESC OFFSET $1 LIMIT $2`,
		page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("competition repository: list %w", err)
	}
	return items, nil
}

// ListByOwner возвращает конкурсы пользователя.
func (r *CompetitionRepository) ListByOwner(ctx context.Context, userID int64, page common.Page) ([]models.Competition, error) {
	items, err := common.SelectAll[models.Competition](ctx, r.db,
		`SELECT `+competitionColumns+` FROM competitions WHERE user_id = $1
		ORDER BY date DESC NULLS LAST, id DESC OFFSET $2 LIMIT $3`,
		userID, page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("competition repository: list by owner %w", err)
	}
	return items, nil
}

// Update перезаписывает конкурс. name и competition_name всегда пишутся вместе.
func (r *CompetitionRepository) Update(ctx context.Context, c *models.Competition) error {
	query := `
		UPDATE competitions SET
			user_id = :user_id, name = :name, competition_name = :name, result = :result,
			description = :description, detailed_description = :detailed_description,
			date = :date, certificate_url = :certificate_url, project_images = :project_images,
			category = :category, featured = :featured, organizer = :organizer,
			location = :location, award = :award, team_size = :team_size, role = :role,
			technologies = :technologies, project_url = :project_url, updated_at = NOW()
		WHERE id = :id
		RETURNING ` + competitionColumns

	if err := common.NamedGet(ctx, r.db, query, c, c); err != nil {
		return mapUpdateErr("competition", err, ErrCompetitionNotFound)
	}
	return nil
}

// Delete удаляет конкурс и возвращает удалённую запись.
func (r *CompetitionRepository) Delete(ctx context.Context, id int64) (*models.Competition, error) {
	c, err := common.GetOne[models.Competition](ctx, r.db, ErrCompetitionNotFound,
		`DELETE FROM competitions WHERE id = $1 RETURNING `+competitionColumns, id)
	if err != nil && !errors.Is(err, ErrCompetitionNotFound) {
		return nil, fmt.Errorf("competition repository: delete %w", err)
	}
	return c, err
}

func insertCompetition(ctx context.Context, q sqlx.ExtContext, c *models.Competition) error {
	query := `
		INSERT INTO competitions (
			user_id, name, competition_name, result, description, detailed_description, date,
			certificate_url, project_images, category, featured, organizer, location, award,
			team_size, role, technologies, project_url
		) VALUES (
			:user_id, :name, :name, :result, :description, :detailed_description, :date,
			:certificate_url, :project_images, :category, :featured, :organizer, :location, :award,
			:team_size, :role, :technologies, :project_url
		)
		RETURNING ` + competitionColumns
	return common.NamedGet(ctx, q, query, c, c)
}
