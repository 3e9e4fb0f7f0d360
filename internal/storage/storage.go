package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ignatzorin/portfolio-backend/internal/config"
)

var (
	// ErrTooLarge файл больше допустимого размера.
	ErrTooLarge = errors.New("storage: file exceeds upload limit")
	// ErrObjectNotFound объекта нет в хранилище.
	ErrObjectNotFound = errors.New("storage: object not found")
)

// Object описывает сохранённый файл.
type Object struct {
	Key  string
	Path string
	Size int64
}

// FileStorage хранилище содержимого загруженных файлов.
type FileStorage interface {
	Save(ctx context.Context, originalName, contentType string, r io.Reader) (*Object, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// New создаёт хранилище по настройкам: локальный диск или MinIO.
func New(ctx context.Context, cfg config.StorageConfig, maxUploadMB int64) (FileStorage, error) {
	maxBytes := maxUploadMB * 1024 * 1024
	switch cfg.Driver {
	case config.StorageLocal:
		return NewLocalStorage(cfg.LocalPath, maxBytes)
	case config.StorageMinIO:
		return NewMinIOStorage(ctx, cfg.MinIO, maxBytes)
	default:
		return nil, fmt.Errorf("storage: неизвестный драйвер %q", cfg.Driver)
	}
}

// objectKey генерирует уникальное имя, сохраняя расширение исходного файла.
func objectKey(originalName string) string {
	ext := strings.ToLower(filepath.Ext(sanitizeFilename(originalName)))
	return uuid.NewString() + ext
}

// sanitizeFilename удаляет потенциально опасные символы.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" || name == "." {
		name = "file"
	}
	return name
}

// validKey не пускает ключи, выходящие за пределы хранилища.
func validKey(key string) bool {
	return key != "" && key == sanitizeFilename(key)
}
