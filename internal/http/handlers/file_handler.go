package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// multipartOverhead запас на заголовки multipart и JSON-обёртку.
const multipartOverhead = 1 << 20

// FileHandler управляет загрузкой и выдачей изображений.
type FileHandler struct {
	files        *service.FileService
	maxBodyBytes int64
}

// NewFileHandler создаёт новый хэндлер. maxUploadMB ограничивает размер файла.
func NewFileHandler(files *service.FileService, maxUploadMB int64) *FileHandler {
	// base64 раздувает данные на треть.
	maxBody := maxUploadMB*1024*1024*4/3 + multipartOverhead
	return &FileHandler{files: files, maxBodyBytes: maxBody}
}

// Upload обрабатывает POST /files: multipart-поле file или JSON {name, type, size, data}.
func (h *FileHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)

	var (
		up  service.Upload
		err error
	)
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		up, err = h.multipartUpload(c)
	} else {
		up, err = h.base64Upload(c)
	}
	if err != nil {
		common.Fail(c, err)
		return
	}
	if closer, ok := up.Content.(io.Closer); ok {
		defer closer.Close()
	}

	file, err := h.files.Upload(c.Request.Context(), up)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, file)
}

func (h *FileHandler) multipartUpload(c *gin.Context) (service.Upload, error) {
	header, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return service.Upload{}, apperror.New(apperror.ErrCodeTooLarge, "тело запроса слишком большое")
		}
		return service.Upload{}, apperror.Validation("поле file обязательно")
	}
	if header.Size == 0 {
		return service.Upload{}, apperror.Validation("файл не может быть пустым")
	}

	src, err := header.Open()
	if err != nil {
		return service.Upload{}, apperror.Wrap(err, apperror.ErrCodeBadRequest, "не удалось прочитать файл")
	}
	return service.Upload{Name: header.Filename, Size: header.Size, Content: src}, nil
}

func (h *FileHandler) base64Upload(c *gin.Context) (service.Upload, error) {
	var req dto.Base64UploadRequest
	if err := common.BindJSON(c, &req); err != nil {
		return service.Upload{}, err
	}
	return service.DecodeBase64(req.Name, req.Data, req.Size)
}

// ListFiles обрабатывает GET /files.
func (h *FileHandler) ListFiles(c *gin.Context) {
	page, err := common.GetPage(c)
	if err != nil {
		common.Fail(c, err)
		return
	}

	files, err := h.files.ListFiles(c.Request.Context(), page)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, files)
}

// GetFile обрабатывает GET /files/:id.
func (h *FileHandler) GetFile(c *gin.Context) {
	file, err := h.files.GetFile(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, file)
}

// Content обрабатывает GET /files/:id/content и отдаёт байты файла.
func (h *FileHandler) Content(c *gin.Context) {
	file, rc, err := h.files.OpenContent(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.Fail(c, err)
		return
	}
	defer rc.Close()

	c.Header("Cache-Control", "public, max-age=86400")
	c.Header("Content-Disposition", "inline; filename="+strconv.Quote(file.OriginalName))
	c.DataFromReader(http.StatusOK, file.Size, file.MimeType, rc, nil)
}

// DeleteFile обрабатывает DELETE /files/:id.
func (h *FileHandler) DeleteFile(c *gin.Context) {
	file, err := h.files.DeleteFile(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.Fail(c, err)
		return
	}
	logger.FromContext(c.Request.Context()).WithField("file_id", file.ID).Info("file deleted")
	c.JSON(http.StatusOK, file)
}
