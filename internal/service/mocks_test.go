package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
		user.CreatedAt = time.Now()
	}
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetOwner(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context, page common.Page) ([]models.User, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type mockPatentRepo struct {
	mock.Mock
}

func (m *mockPatentRepo) Create(ctx context.Context, p *models.Patent) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil {
		p.ID = "patent-1"
	}
	return args.Error(0)
}

func (m *mockPatentRepo) GetByID(ctx context.Context, id string) (*models.Patent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patent), args.Error(1)
}

func (m *mockPatentRepo) List(ctx context.Context, page common.Page) ([]models.Patent, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]models.Patent), args.Error(1)
}

func (m *mockPatentRepo) ListByOwner(ctx context.Context, userID int64, page common.Page) ([]models.Patent, error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).([]models.Patent), args.Error(1)
}

func (m *mockPatentRepo) ListByCategory(ctx context.Context, category string, page common.Page) ([]models.Patent, error) {
	args := m.Called(ctx, category, page)
	return args.Get(0).([]models.Patent), args.Error(1)
}

func (m *mockPatentRepo) Update(ctx context.Context, p *models.Patent) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPatentRepo) Delete(ctx context.Context, id string) (*models.Patent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patent), args.Error(1)
}

type mockCompetitionRepo struct {
	mock.Mock
}

func (m *mockCompetitionRepo) Create(ctx context.Context, c *models.Competition) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil {
		c.ID = 7
	}
	return args.Error(0)
}

func (m *mockCompetitionRepo) GetByID(ctx context.Context, id int64) (*models.Competition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Competition), args.Error(1)
}

func (m *mockCompetitionRepo) List(ctx context.Context, page common.Page) ([]models.Competition, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]models.Competition), args.Error(1)
}

func (m *mockCompetitionRepo) ListByOwner(ctx context.Context, userID int64, page common.Page) ([]models.Competition, error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).([]models.Competition), args.Error(1)
}

func (m *mockCompetitionRepo) Update(ctx context.Context, c *models.Competition) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCompetitionRepo) Delete(ctx context.Context, id int64) (*models.Competition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Competition), args.Error(1)
}

type mockSkillRepo struct {
	mock.Mock
}

func (m *mockSkillRepo) Create(ctx context.Context, s *models.Skill) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSkillRepo) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *mockSkillRepo) List(ctx context.Context, page common.Page) ([]models.Skill, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]models.Skill), args.Error(1)
}

func (m *mockSkillRepo) ListByOwner(ctx context.Context, userID int64, page common.Page) ([]models.Skill, error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).([]models.Skill), args.Error(1)
}

func (m *mockSkillRepo) Update(ctx context.Context, s *models.Skill) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSkillRepo) Delete(ctx context.Context, id string) (*models.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

type mockAboutRepo struct {
	mock.Mock
}

func (m *mockAboutRepo) Create(ctx context.Context, v *models.AboutValue) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *mockAboutRepo) NextOrderIndex(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockAboutRepo) GetByID(ctx context.Context, id string) (*models.AboutValue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AboutValue), args.Error(1)
}

func (m *mockAboutRepo) List(ctx context.Context, activeOnly bool, page common.Page) ([]models.AboutValue, error) {
	args := m.Called(ctx, activeOnly, page)
	return args.Get(0).([]models.AboutValue), args.Error(1)
}

func (m *mockAboutRepo) Update(ctx context.Context, v *models.AboutValue) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *mockAboutRepo) Delete(ctx context.Context, id string) (*models.AboutValue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AboutValue), args.Error(1)
}

func (m *mockAboutRepo) Reorder(ctx context.Context, orderedIDs []string) error {
	args := m.Called(ctx, orderedIDs)
	return args.Error(0)
}

type mockFileRepo struct {
	mock.Mock
}

func (m *mockFileRepo) Create(ctx context.Context, f *models.UploadedFile) error {
	args := m.Called(ctx, f)
	if args.Error(0) == nil {
		f.ID = "file-1"
	}
	return args.Error(0)
}

func (m *mockFileRepo) GetByID(ctx context.Context, id string) (*models.UploadedFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UploadedFile), args.Error(1)
}

func (m *mockFileRepo) List(ctx context.Context, page common.Page) ([]models.UploadedFile, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]models.UploadedFile), args.Error(1)
}

func (m *mockFileRepo) Delete(ctx context.Context, id string) (*models.UploadedFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UploadedFile), args.Error(1)
}

type mockStorage struct {
	mock.Mock
	saved []byte
}

func (m *mockStorage) Save(ctx context.Context, originalName, contentType string, r io.Reader) (*storage.Object, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	m.saved = data
	args := m.Called(ctx, originalName, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	obj := args.Get(0).(*storage.Object)
	obj.Size = int64(len(data))
	return obj, args.Error(1)
}

func (m *mockStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type mockAnalyticsRepo struct {
	mock.Mock
}

func (m *mockAnalyticsRepo) RecordVisit(ctx context.Context, session *models.VisitorSession, view *models.PageView) error {
	args := m.Called(ctx, session, view)
	return args.Error(0)
}

func (m *mockAnalyticsRepo) Aggregate(ctx context.Context, from, to time.Time, top int) (*models.TrafficStats, error) {
	args := m.Called(ctx, from, to, top)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TrafficStats), args.Error(1)
}

func (m *mockAnalyticsRepo) RecentViews(ctx context.Context, limit int) ([]models.PageView, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PageView), args.Error(1)
}

type mockBootstrapRepo struct {
	mock.Mock
}

func (m *mockBootstrapRepo) InitializeOwner(ctx context.Context, data *repository.BootstrapData) (bool, error) {
	args := m.Called(ctx, data)
	if args.Bool(0) {
		data.Owner.ID = 1
	}
	return args.Bool(0), args.Error(1)
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }
