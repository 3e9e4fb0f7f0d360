package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ignatzorin/portfolio-backend/internal/config"
)

// MinIOStorage хранит файлы в S3-совместимом бакете.
type MinIOStorage struct {
	client         *minio.Client
	bucketName     string
	maxUploadBytes int64
}

// NewMinIOStorage подключается к MinIO и создаёт бакет, если его нет.
func NewMinIOStorage(ctx context.Context, cfg config.MinIOConfig, maxUploadBytes int64) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("storage: check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("storage: make bucket %q: %w", cfg.Bucket, err)
		}
	}

	return &MinIOStorage{
		client:         client,
		bucketName:     cfg.Bucket,
		maxUploadBytes: maxUploadBytes,
	}, nil
}

// Save загружает объект. Файл целиком читается в память, лимит размера невелик.
func (s *MinIOStorage) Save(ctx context.Context, originalName, contentType string, r io.Reader) (*Object, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("storage: read upload: %w", err)
	}
	if int64(len(data)) > s.maxUploadBytes {
		return nil, ErrTooLarge
	}

	key := objectKey(originalName)
	info, err := s.client.PutObject(ctx, s.bucketName, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, fmt.Errorf("storage: put object %q: %w", key, err)
	}

	return &Object{Key: key, Path: s.bucketName + "/" + key, Size: info.Size}, nil
}

// Open возвращает поток чтения объекта.
func (s *MinIOStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if !validKey(key) {
		return nil, ErrObjectNotFound
	}

	obj, err := s.client.GetObject(ctx, s.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("storage: get object %q: %w", key, err)
	}
	// GetObject ленивый: отсутствие объекта видно только после Stat.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("storage: stat object %q: %w", key, err)
	}
	return obj, nil
}

// Delete удаляет объект. Удаление несуществующего объекта успешно.
func (s *MinIOStorage) Delete(ctx context.Context, key string) error {
	if !validKey(key) {
		return nil
	}
	if err := s.client.RemoveObject(ctx, s.bucketName, key, minio.RemoveObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("storage: remove object %q: %w", key, err)
	}
	return nil
}
