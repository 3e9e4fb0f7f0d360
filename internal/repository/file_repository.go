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

// ErrFileNotFound сигнализирует об отсутствии файла.
var ErrFileNotFound = fmt.Errorf("uploaded file %w", common.ErrNotFound)

const fileColumns = `id, original_name, stored_name, mime_type, size, storage_path, created_at`

// FileRepository работает с таблицей uploaded_files.
type FileRepository struct {
	db *sqlx.DB
}

// NewFileRepository создаёт экземпляр.
func NewFileRepository(db *sqlx.DB) *FileRepository {
	return &FileRepository{db: db}
}

// Create сохраняет запись о файле.
func (r *FileRepository) Create(ctx context.Context, f *models.UploadedFile) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	query := `
		INSERT INTO uploaded_files (id, original_name, stored_name, mime_type, size, storage_path)
		VALUES (:id, :original_name, :stored_name, :mime_type, :size, :storage_path)
		RETURNING ` + fileColumns

	if err := common.NamedGet(ctx, r.db, query, f, f); err != nil {
		return fmt.Errorf("file repository: create %w", err)
	}
	return nil
}

// GetByID возвращает запись о файле.
func (r *FileRepository) GetByID(ctx context.Context, id string) (*models.UploadedFile, error) {
	f, err := common.GetOne[models.UploadedFile](ctx, r.db, ErrFileNotFound,
		`SELECT `+fileColumns+` FROM uploaded_files WHERE id = $1`, id)
	if err != nil && !errors.Is(err, ErrFileNotFound) {
		return nil, fmt.Errorf("file repository: get by id %w", err)
	}
	return f, err
}

// List возвращает страницу файлов, новые первыми.
func (r *FileRepository) List(ctx context.Context, page common.Page) ([]models.UploadedFile, error) {
	items, err := common.SelectAll[models.UploadedFile](ctx, r.db,
		`SELECT `+fileColumns+` FROM uploaded_files ORDER BY created_at DESC, id DESC OFFSET $1 LIMIT $2`,
		page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("file repository: list %w", err)
	}
	return items, nil
}

// Delete удаляет запись о файле и возвращает её.
func (r *FileRepository) Delete(ctx context.Context, id string) (*models.UploadedFile, error) {
	f, err := common.GetOne[models.UploadedFile](ctx, r.db, ErrFileNotFound,
		`DELETE FROM uploaded_files WHERE id = $1 RETURNING `+fileColumns, id)
	if err != nil && !errors.Is(err, ErrFileNotFound) {
		return nil, fmt.Errorf("file repository: delete %w", err)
	}
	return f, err
}
