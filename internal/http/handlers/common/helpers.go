package common

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	repocommon "github.com/ignatzorin/portfolio-backend/internal/repository/common"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// GetPage читает skip и limit из query. Отсутствующие значения берутся по умолчанию.
func GetPage(c *gin.Context) (repocommon.Page, error) {
	skip, err := IntQuery(c, "skip", 0)
	if err != nil {
		return repocommon.Page{}, err
	}
	limit, err := IntQuery(c, "limit", repocommon.DefaultLimit)
	if err != nil {
		return repocommon.Page{}, err
	}
	return repocommon.NewPage(skip, limit), nil
}

// IntQuery читает целочисленный query-параметр.
func IntQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.Validation("параметр %s должен быть целым числом", name)
	}
	return n, nil
}

// OptionalUserID читает фильтр user_id. Пустое значение означает отсутствие фильтра.
func OptionalUserID(c *gin.Context) (*int64, error) {
	raw := strings.TrimSpace(c.Query("user_id"))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperror.Validation("параметр user_id должен быть целым числом")
	}
	return &id, nil
}

// BindJSON разбирает тело запроса и переводит ошибки в AppError.
func BindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apperror.New(apperror.ErrCodeTooLarge, "тело запроса слишком большое")
		}
		if errors.Is(err, io.EOF) {
			return apperror.Malformed(err)
		}
		return validation.BindingError(err)
	}
	return nil
}

// Fail передаёт ошибку в ErrorHandler и прерывает обработку.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// DefaultPage первая страница стандартного размера.
func DefaultPage() repocommon.Page {
	return repocommon.NewPage(0, repocommon.DefaultLimit)
}
