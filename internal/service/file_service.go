package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/h2non/filetype"

	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
)

// Разрешённые расширения и соответствующие им MIME-типы содержимого.
var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// sniffLen сколько байт нужно filetype для распознавания формата.
const sniffLen = 512

// FileRepository описывает хранилище метаданных загруженных файлов.
type FileRepository interface {
	Create(ctx context.Context, f *models.UploadedFile) error
	GetByID(ctx context.Context, id string) (*models.UploadedFile, error)
	List(ctx context.Context, page common.Page) ([]models.UploadedFile, error)
	Delete(ctx context.Context, id string) (*models.UploadedFile, error)
}

// Upload входящий файл.
type Upload struct {
	Name string
	// Size заявленный размер, -1 если неизвестен.
	Size    int64
	Content io.Reader
}

// FileService принимает изображения и раздаёт их содержимое.
type FileService struct {
	repo     FileRepository
	storage  storage.FileStorage
	maxBytes int64
}

// NewFileService создаёт сервис файлов. maxUploadMB ограничивает размер одного файла.
func NewFileService(repo FileRepository, storage storage.FileStorage, maxUploadMB int64) *FileService {
	return &FileService{repo: repo, storage: storage, maxBytes: maxUploadMB * 1024 * 1024}
}

// Upload проверяет расширение и сигнатуру содержимого, сохраняет файл и его метаданные.
func (s *FileService) Upload(ctx context.Context, up Upload) (*models.UploadedFile, error) {
	name := strings.TrimSpace(up.Name)
	if name == "" {
		return nil, apperror.Validation("имя файла обязательно")
	}

	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, apperror.Validation("неподдерживаемый формат файла. Разрешены: %s",
			strings.Join(AllowedExtensions(), ", "))
	}
	if up.Size > s.maxBytes {
		return nil, tooLarge(s.maxBytes)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(up.Content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, apperror.Wrap(err, apperror.ErrCodeBadRequest, "не удалось прочитать файл")
	}
	if n == 0 {
		return nil, apperror.Validation("файл не может быть пустым")
	}
	head = head[:n]

	mimeType, err := detectImage(head, ext)
	if err != nil {
		return nil, err
	}

	obj, err := s.storage.Save(ctx, name, mimeType, io.MultiReader(bytes.NewReader(head), up.Content))
	if err != nil {
		if errors.Is(err, storage.ErrTooLarge) {
			return nil, tooLarge(s.maxBytes)
		}
		return nil, err
	}

	file := &models.UploadedFile{
		OriginalName: filepath.Base(name),
		StoredName:   obj.Key,
		MimeType:     mimeType,
		Size:         obj.Size,
		StoragePath:  obj.Path,
	}
	if err := s.repo.Create(ctx, file); err != nil {
		if delErr := s.storage.Delete(ctx, obj.Key); delErr != nil {
			logger.FromContext(ctx).WithError(delErr).WithField("key", obj.Key).Warn("не удалось удалить осиротевший файл")
		}
		return nil, err
	}

	return withURL(file), nil
}

// ListFiles возвращает метаданные загруженных файлов.
func (s *FileService) ListFiles(ctx context.Context, page common.Page) ([]models.UploadedFile, error) {
	files, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	for i := range files {
		withURL(&files[i])
	}
	return files, nil
}

// GetFile возвращает метаданные файла.
func (s *FileService) GetFile(ctx context.Context, id string) (*models.UploadedFile, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return withURL(f), nil
}

// OpenContent возвращает метаданные и поток содержимого. Поток закрывает вызывающий.
func (s *FileService) OpenContent(ctx context.Context, id string) (*models.UploadedFile, io.ReadCloser, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.storage.Open(ctx, f.StoredName)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, apperror.NotFound("содержимое файла не найдено")
		}
		return nil, nil, err
	}
	return withURL(f), rc, nil
}

// DeleteFile удаляет запись, затем содержимое. Ошибка удаления содержимого только логируется.
func (s *FileService) DeleteFile(ctx context.Context, id string) (*models.UploadedFile, error) {
	f, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.storage.Delete(ctx, f.StoredName); err != nil {
		logger.FromContext(ctx).WithError(err).WithField("file_id", f.ID).Warn("не удалось удалить содержимое файла")
	}
	return withURL(f), nil
}

// DecodeBase64 превращает JSON-загрузку в Upload. data может быть data URL.
func DecodeBase64(name, data string, declaredSize int64) (Upload, error) {
	payload := strings.TrimSpace(data)
	if strings.HasPrefix(payload, "data:") {
		_, encoded, ok := strings.Cut(payload, ",")
		if !ok {
			return Upload{}, apperror.Validation("некорректный data URL")
		}
		payload = encoded
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		if raw, err = base64.RawStdEncoding.DecodeString(payload); err != nil {
			return Upload{}, apperror.Wrap(err, apperror.ErrCodeBadRequest, "данные файла не являются base64")
		}
	}

	size := int64(len(raw))
	if declaredSize > size {
		size = declaredSize
	}
	return Upload{Name: name, Size: size, Content: bytes.NewReader(raw)}, nil
}

// AllowedExtensions список разрешённых расширений.
func AllowedExtensions() []string {
	exts := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// detectImage сверяет сигнатуру содержимого с расширением имени файла.
func detectImage(head []byte, ext string) (string, error) {
	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return "", apperror.Validation("не удалось определить тип файла")
	}

	mimeType := kind.MIME.Value
	if allowedExtensions["."+kind.Extension] != mimeType {
		return "", apperror.Validation("тип содержимого %s не разрешён", mimeType)
	}
	if allowedExtensions[ext] != mimeType {
		return "", apperror.Validation("расширение %s не соответствует содержимому (%s)", ext, kind.Extension)
	}
	return mimeType, nil
}

func tooLarge(maxBytes int64) error {
	return apperror.New(apperror.ErrCodeTooLarge,
		fmt.Sprintf("файл слишком большой, максимум %d МБ", maxBytes/(1024*1024)))
}

func withURL(f *models.UploadedFile) *models.UploadedFile {
	f.URL = "/api/v1/files/" + f.ID + "/content"
	return f
}
