package service

import (
	"context"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// NewsRepository описывает взаимодействие сервиса с хранилищем публикаций.
type NewsRepository interface {
	Create(ctx context.Context, a *models.NewsArticle) error
	GetByID(ctx context.Context, id string) (*models.NewsArticle, error)
	List(ctx context.Context, page common.Page) ([]models.NewsArticle, error)
	ListByOwner(ctx context.Context, userID int64, page common.Page) ([]models.NewsArticle, error)
	Update(ctx context.Context, a *models.NewsArticle) error
	Delete(ctx context.Context, id string) (*models.NewsArticle, error)
}

// NewsService публикации в СМИ.
type NewsService struct {
	repo NewsRepository
}

// NewNewsService создаёт сервис публикаций.
func NewNewsService(repo NewsRepository) *NewsService {
	return &NewsService{repo: repo}
}

// ListArticles возвращает публикации, при userID только публикации этого пользователя.
func (s *NewsService) ListArticles(ctx context.Context, userID *int64, page common.Page) ([]models.NewsArticle, error) {
	if userID != nil {
		return s.repo.ListByOwner(ctx, *userID, page)
	}
	return s.repo.List(ctx, page)
}

// GetArticle возвращает публикацию.
func (s *NewsService) GetArticle(ctx context.Context, id string) (*models.NewsArticle, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateArticle создаёт публикацию. Обязателен только заголовок.
func (s *NewsService) CreateArticle(ctx context.Context, in dto.NewsInput) (*models.NewsArticle, error) {
	if err := required("title", in.Title); err != nil {
		return nil, err
	}

	a := &models.NewsArticle{
		Status: models.ArticleStatusPublished,
		Tags:   models.StringList{},
	}
	if err := applyNewsInput(a, in); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateArticle применяет только переданные поля.
func (s *NewsService) UpdateArticle(ctx context.Context, id string, in dto.NewsInput) (*models.NewsArticle, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyNewsInput(a, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// DeleteArticle удаляет публикацию.
func (s *NewsService) DeleteArticle(ctx context.Context, id string) (*models.NewsArticle, error) {
	return s.repo.Delete(ctx, id)
}

func applyNewsInput(a *models.NewsArticle, in dto.NewsInput) error {
	if err := applyNonEmpty("title", &a.Title, in.Title); err != nil {
		return err
	}
	if in.Status != nil && *in.Status != "" {
		a.Status = *in.Status
	}
	applyOwner(&a.UserID, in.UserID)
	applyOptional(&a.MediaName, in.MediaName)
	applyDate(&a.PublicationDate, in.PublicationDate)
	applyOptional(&a.Author, in.Author)
	applyOptional(&a.Summary, in.Summary)
	applyOptional(&a.Content, in.Content)
	applyOptional(&a.ArticleURL, in.ArticleURL)
	applyOptional(&a.ImageURL, in.ImageURL)
	applyList(&a.Tags, in.Tags)
	applyOptional(&a.Category, in.Category)
	apply(&a.Featured, in.Featured)
	apply(&a.ViewCount, in.ViewCount)
	return nil
}
