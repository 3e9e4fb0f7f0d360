package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// UserRepository описывает зависимости UserService от хранилища.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetOwner(ctx context.Context) (*models.User, error)
	List(ctx context.Context, page common.Page) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// UserService управляет профилями пользователей и владельца портфолио.
type UserService struct {
	repo UserRepository
}

// NewUserService создаёт сервис пользователей.
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// ListUsers возвращает страницу пользователей.
func (s *UserService) ListUsers(ctx context.Context, page common.Page) ([]models.User, error) {
	return s.repo.List(ctx, page)
}

// GetUser возвращает пользователя по строковому идентификатору.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	userID, err := parseIntID(id, repository.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, userID)
}

// CreateUser создаёт пользователя. Имя и email обязательны, email уникален.
func (s *UserService) CreateUser(ctx context.Context, in dto.UserInput) (*models.User, error) {
	if err := required("name", in.Name); err != nil {
		return nil, err
	}
	if err := required("email", in.Email); err != nil {
		return nil, err
	}

	user := &models.User{}
	if err := applyUserInput(user, in); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByEmail(ctx, user.Email); err == nil {
		return nil, repository.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser частично обновляет пользователя.
func (s *UserService) UpdateUser(ctx context.Context, id string, in dto.UserInput) (*models.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, user, in)
}

// GetOwnerProfile возвращает профиль владельца. Пока владельца нет, отдаётся заглушка без id.
func (s *UserService) GetOwnerProfile(ctx context.Context) (*models.User, error) {
	owner, err := s.repo.GetOwner(ctx)
	if errors.Is(err, repository.ErrUserNotFound) {
		placeholder := models.DefaultOwner()
		return &placeholder, nil
	}
	return owner, err
}

// UpsertOwner обновляет профиль владельца или создаёт его, если владельца ещё нет.
func (s *UserService) UpsertOwner(ctx context.Context, in dto.UserInput) (*models.User, error) {
	owner, err := s.repo.GetOwner(ctx)
	if err == nil {
		return s.update(ctx, owner, in)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	user := models.DefaultOwner()
	if err := applyUserInput(&user, in); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) update(ctx context.Context, user *models.User, in dto.UserInput) (*models.User, error) {
	if err := applyUserInput(user, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func applyUserInput(u *models.User, in dto.UserInput) error {
	if err := applyNonEmpty("name", &u.Name, in.Name); err != nil {
		return err
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if err := validation.ValidateEmail(email); err != nil {
			return apperror.Validation("%s", err.Error())
		}
		u.Email = email
	}
	applyOptional(&u.Title, in.Title)
	applyOptional(&u.Phone, in.Phone)
	applyOptional(&u.Bio, in.Description)
	applyOptional(&u.AvatarURL, in.Avatar)
	applyOptional(&u.GithubURL, in.Github)
	applyOptional(&u.LinkedinURL, in.Linkedin)
	applyOptional(&u.Location, in.Location)
	applyOptional(&u.WebsiteURL, in.Website)
	return nil
}
