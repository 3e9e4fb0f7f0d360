package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// ErrorHandler обрабатывает ошибки централизованно.
// Хендлеры кладут ошибку через c.Error, ответ формируется здесь в виде {"error", "code"}.
// Внутренние ошибки маскируются.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		appErr := classify(err)

		entry := logger.FromContext(c.Request.Context()).WithFields(logrus.Fields{
			"error":  err.Error(),
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"status": appErr.HTTPStatus,
		})
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			entry.Error("Request error")
		} else {
			entry.Debug("Request rejected")
		}

		c.JSON(appErr.HTTPStatus, gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
	}
}

// classify приводит ошибку к AppError с кодом и HTTP-статусом.
func classify(err error) *apperror.AppError {
	if appErr, ok := apperror.As(err); ok {
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			return apperror.ErrInternal
		}
		return appErr
	}

	switch {
	case errors.Is(err, repository.ErrOwnerNotFound):
		return apperror.Validation("указанный пользователь не существует")
	case errors.Is(err, repository.ErrEmailTaken):
		return apperror.Conflict("пользователь с таким email уже существует")
	case errors.Is(err, common.ErrNotFound):
		return apperror.NotFound(notFoundMessage(err))
	case errors.Is(err, common.ErrAlreadyExists):
		return apperror.Conflict("запись уже существует")
	default:
		return apperror.ErrInternal
	}
}

var notFoundMessages = map[error]string{
	repository.ErrUserNotFound:        "пользователь не найден",
	repository.ErrPatentNotFound:      "патент не найден",
	repository.ErrCompetitionNotFound: "конкурс не найден",
	repository.ErrArticleNotFound:     "публикация не найдена",
	repository.ErrProjectNotFound:     "проект не найден",
	repository.ErrSkillNotFound:       "навык не найден",
	repository.ErrFileNotFound:        "файл не найден",
	repository.ErrAboutValueNotFound:  "карточка не найдена",
}

func notFoundMessage(err error) string {
	for sentinel, msg := range notFoundMessages {
		if errors.Is(err, sentinel) {
			return msg
		}
	}
	return "запись не найдена"
}
