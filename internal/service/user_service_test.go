package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
)

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("requires name and email", func(t *testing.T) {
		svc := NewUserService(new(mockUserRepo))

		_, err := svc.CreateUser(ctx, dto.UserInput{Email: strPtr("a@example.com")})
		assert.True(t, apperror.IsValidation(err))

		_, err = svc.CreateUser(ctx, dto.UserInput{Name: strPtr("Ann")})
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		svc := NewUserService(new(mockUserRepo))
		_, err := svc.CreateUser(ctx, dto.UserInput{Name: strPtr("Ann"), Email: strPtr("not-an-email")})
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByEmail", ctx, "ann@example.com").Return(&models.User{ID: 3}, nil)
		svc := NewUserService(repo)

		_, err := svc.CreateUser(ctx, dto.UserInput{Name: strPtr("Ann"), Email: strPtr("ann@example.com")})
		assert.ErrorIs(t, err, repository.ErrEmailTaken)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("success maps wire fields", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByEmail", ctx, "ann@example.com").Return(nil, repository.ErrUserNotFound)
		repo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil)
		svc := NewUserService(repo)

		user, err := svc.CreateUser(ctx, dto.UserInput{
			Name:        strPtr("Ann"),
			Email:       strPtr(" ann@example.com "),
			Description: strPtr("Engineer"),
			Github:      strPtr("https://github.com/ann"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "ann@example.com", user.Email)
		assert.Equal(t, "Engineer", *user.Bio)
		assert.Equal(t, "https://github.com/ann", *user.GithubURL)
		repo.AssertExpectations(t)
	})
}

func TestUserService_GetUserInvalidID(t *testing.T) {
	svc := NewUserService(new(mockUserRepo))
	_, err := svc.GetUser(context.Background(), "abc")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserService_UpdateUserPartial(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	existing := &models.User{ID: 5, Name: "Ann", Email: "ann@example.com", Phone: strPtr("123")}
	repo.On("GetByID", ctx, int64(5)).Return(existing, nil)
	repo.On("Update", ctx, existing).Return(nil)
	svc := NewUserService(repo)

	user, err := svc.UpdateUser(ctx, "5", dto.UserInput{Location: strPtr("Taipei")})
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "123", *user.Phone)
	assert.Equal(t, "Taipei", *user.Location)

	_, err = svc.UpdateUser(ctx, "5", dto.UserInput{Name: strPtr("  ")})
	assert.True(t, apperror.IsValidation(err))
}

func TestUserService_OwnerProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("placeholder when empty", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetOwner", ctx).Return(nil, repository.ErrUserNotFound)
		svc := NewUserService(repo)

		owner, err := svc.GetOwnerProfile(ctx)
		require.NoError(t, err)
		assert.Zero(t, owner.ID)
		assert.Equal(t, models.DefaultOwnerName, owner.Name)
	})

	t.Run("upsert creates owner from defaults", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetOwner", ctx).Return(nil, repository.ErrUserNotFound)
		repo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil)
		svc := NewUserService(repo)

		owner, err := svc.UpsertOwner(ctx, dto.UserInput{Name: strPtr("Ann")})
		require.NoError(t, err)
		assert.Equal(t, "Ann", owner.Name)
		assert.Equal(t, models.DefaultOwnerEmail, owner.Email)
	})

	t.Run("upsert updates existing owner", func(t *testing.T) {
		repo := new(mockUserRepo)
		existing := &models.User{ID: 1, Name: "Ann", Email: "ann@example.com"}
		repo.On("GetOwner", ctx).Return(existing, nil)
		repo.On("Update", ctx, existing).Return(nil)
		svc := NewUserService(repo)

		owner, err := svc.UpsertOwner(ctx, dto.UserInput{Title: strPtr("CTO")})
		require.NoError(t, err)
		assert.Equal(t, "CTO", *owner.Title)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
