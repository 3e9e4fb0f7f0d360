package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

var (
	// ErrUserNotFound возвращается, если пользователь не найден.
	ErrUserNotFound = fmt.Errorf("user %w", common.ErrNotFound)
	// ErrEmailTaken возвращается при попытке занять уже существующий email.
	ErrEmailTaken = fmt.Errorf("user email %w", common.ErrAlreadyExists)
)

const userColumns = `id, name, title, email, phone, bio, avatar_url, github_url, linkedin_url,
	location, website_url, created_at, updated_at`

// UserRepository обеспечивает доступ к владельцам портфолио.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создаёт репозиторий пользователей.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create добавляет нового пользователя.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if err := insertUser(ctx, r.db, user); err != nil {
		if common.IsUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("user repository: create %w", err)
	}
	return nil
}

// GetByID ищет пользователя по идентификатору.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := common.GetOne[models.User](ctx, r.db, ErrUserNotFound,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("user repository: get by id %w", err)
	}
	return user, err
}

// GetByEmail ищет пользователя по email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := common.GetOne[models.User](ctx, r.db, ErrUserNotFound,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("user repository: get by email %w", err)
	}
	return user, err
}

// GetOwner возвращает владельца портфолио: самого раннего пользователя.
func (r *UserRepository) GetOwner(ctx context.Context) (*models.User, error) {
	user, err := common.GetOne[models.User](ctx, r.db, ErrUserNotFound,
		`SELECT `+userColumns+` FROM users ORDER BY created_at, id LIMIT 1`)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("user repository: get owner %w", err)
	}
	return user, err
}

// List возвращает страницу пользователей, новые первыми.
func (r *UserRepository) List(ctx context.Context, page common.Page) ([]models.User, error) {
	users, err := common.SelectAll[models.User](ctx, r.db,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC OFFSET $1 LIMIT $2`,
		page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("user repository: list %w", err)
	}
	return users, nil
}

// Update перезаписывает профиль и обновляет updated_at.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET
			name = :name, title = :title, email = :email, phone = :phone, bio = :bio,
			avatar_url = :avatar_url, github_url = :github_url, linkedin_url = :linkedin_url,
			location = :location, website_url = :website_url, updated_at = NOW()
		WHERE id = :id
		RETURNING ` + userColumns

	if err := common.NamedGet(ctx, r.db, query, user, user); err != nil {
		switch {
		case isNoRows(err):
			return ErrUserNotFound
		case common.IsUniqueViolation(err):
			return ErrEmailTaken
		}
		return fmt.Errorf("user repository: update %w", err)
	}
	return nil
}

func insertUser(ctx context.Context, q sqlx.ExtContext, user *models.User) error {
	query := `
		INSERT INTO users (name, title, email, phone, bio, avatar_url, github_url, linkedin_url, location, website_url)
		VALUES (:name, :title, :email, :phone, :bio, :avatar_url, :github_url, :linkedin_url, :location, :website_url)
		RETURNING ` + userColumns
	return common.NamedGet(ctx, q, query, user, user)
}
