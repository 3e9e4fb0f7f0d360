package models

import (
	"time"
)

// UploadedFile метаданные загруженного файла. Содержимое лежит в файловом хранилище.
type UploadedFile struct {
	ID           string    `db:"id" json:"id"`
	OriginalName string    `db:"original_name" json:"name"`
	StoredName   string    `db:"stored_name" json:"storedName"`
	MimeType     string    `db:"mime_type" json:"type"`
	Size         int64     `db:"size" json:"size"`
	StoragePath  string    `db:"storage_path" json:"path"`
	CreatedAt    time.Time `db:"created_at" json:"uploadedAt"`
	URL          string    `db:"-" json:"url"`
}
