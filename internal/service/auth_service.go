package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
)

// AuthService проверяет общий пароль администратора. Токены не выдаются.
type AuthService struct {
	password     string
	passwordHash []byte
}

// NewAuthService создаёт сервис. Если задан bcrypt-хеш, открытый пароль не используется.
func NewAuthService(password, passwordHash string) *AuthService {
	s := &AuthService{password: password}
	if passwordHash != "" {
		s.passwordHash = []byte(passwordHash)
	}
	return s
}

// Login сверяет пароль с настроенным секретом.
func (s *AuthService) Login(ctx context.Context, password string) error {
	if password == "" {
		return apperror.Validation("пароль обязателен")
	}

	if s.passwordHash != nil {
		err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
		switch {
		case err == nil:
			return nil
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return apperror.ErrInvalidCredentials
		default:
			logger.FromContext(ctx).WithError(err).Error("некорректный ADMIN_PASSWORD_HASH")
			return apperror.ErrInternal
		}
	}

	if s.password == "" || subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return apperror.ErrInvalidCredentials
	}
	return nil
}
