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

// ErrArticleNotFound возвращается, когда публикация не найдена.
var ErrArticleNotFound = fmt.Errorf("news article %w", common.ErrNotFound)

const articleColumns = `id, user_id, title, media_name, publication_date, author, summary, content,
	article_url, image_url, tags, category, status, featured, view_count, created_at, updated_at`

// NewsRepository хранит публикации в СМИ.
type NewsRepository struct {
	db *sqlx.DB
}

// NewNewsRepository создаёт экземпляр репозитория.
func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// Create сохраняет публикацию.
func (r *NewsRepository) Create(ctx context.Context, a *models.NewsArticle) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		ownerID, err := resolveOwner(ctx, tx, a.UserID)
		if err != nil {
			return err
		}
		a.UserID = &ownerID
		a.ID = uuid.NewString()

		query := `
			INSERT INTO news_articles (
				id, user_id, title, media_name, publication_date, author, summary, content,
				article_url, image_url, tags, category, status, featured, view_count
			) VALUES (
				:id, :user_id, :title, :media_name, :publication_date, :author, :summary, :content,
				:article_url, :image_url, :tags, :category, :status, :featured, :view_count
			)
			RETURNING ` + articleColumns
		if err := common.NamedGet(ctx, tx, query, a, a); err != nil {
			return fmt.Errorf("news repository: create %w", err)
		}
		return nil
	})
}

// GetByID возвращает публикацию.
func (r *NewsRepository) GetByID(ctx context.Context, id string) (*models.NewsArticle, error) {
	a, err := common.GetOne[models.NewsArticle](ctx, r.db, ErrArticleNotFound,
		`SELECT `+articleColumns+` FROM news_articles WHERE id = $1`, id)
	if err != nil && !errors.Is(err, ErrArticleNotFound) {
		return nil, fmt.Errorf("news repository: get by id %w", err)
	}
	return a, err
}

// List возвращает страницу публикаций, новые первыми.
func (r *NewsRepository) List(ctx context.Context, page common.Page) ([]models.NewsArticle, error) {
	items, err := common.SelectAll[models.NewsArticle](ctx, r.db,
		`SELECT `+articleColumns+` FROM news_articles ORDER BY created_at DESC, id DESC OFFSET $1 LIMIT $2`,
		page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("news repository: list %w", err)
	}
	return items, nil
}

// ListByOwner возвращает публикации пользователя.
func (r *NewsRepository) ListByOwner(ctx context.Context, userID int64, page common.Page) ([]models.NewsArticle, error) {
	items, err := common.SelectAll[models.NewsArticle](ctx, r.db,
		`SELECT `+articleColumns+` FROM news_articles WHERE user_id = $1
		ORDER BY created_at DESC, id DESC OFFSET $2 LIMIT $3`,
		userID, page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("news repository: list by owner %w", err)
	}
	return items, nil
}

// Update перезаписывает публикацию.
func (r *NewsRepository) Update(ctx context.Context, a *models.NewsArticle) error {
	query := `
		UPDATE news_articles SET
			user_id = :user_id, title = :title, media_name = :media_name,
			publication_date = :publication_date, author = :author, summary = :summary,
			content = :content, article_url = :article_url, image_url = :image_url,
			tags = :tags, category = :category, status = :status, featured = :featured,
			view_count = :view_count, updated_at = NOW()
		WHERE id = :id
		RETURNING ` + articleColumns

	if err := common.NamedGet(ctx, r.db, query, a, a); err != nil {
		return mapUpdateErr("news", err, ErrArticleNotFound)
	}
	return nil
}

// Delete удаляет публикацию и возвращает её.
func (r *NewsRepository) Delete(ctx context.Context, id string) (*models.NewsArticle, error) {
	a, err := common.GetOne[models.NewsArticle](ctx, r.db, ErrArticleNotFound,
		`DELETE FROM news_articles WHERE id = $1 RETURNING `+articleColumns, id)
	if err != nil && !errors.Is(err, ErrArticleNotFound) {
		return nil, fmt.Errorf("news repository: delete %w", err)
	}
	return a, err
}
