package handlers

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// memPatentRepo хранит патенты в памяти в порядке создания.
type memPatentRepo struct {
	mu    sync.Mutex
	order []string
	items map[string]models.Patent
}

func newMemPatentRepo() *memPatentRepo {
	return &memPatentRepo{items: make(map[string]models.Patent)}
}

func (r *memPatentRepo) Create(_ context.Context, p *models.Patent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	r.items[p.ID] = *p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *memPatentRepo) GetByID(_ context.Context, id string) (*models.Patent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, repository.ErrPatentNotFound
	}
	return &p, nil
}

func (r *memPatentRepo) List(_ context.Context, page common.Page) ([]models.Patent, error) {
	return r.filter(page, func(models.Patent) bool { return true }), nil
}

func (r *memPatentRepo) ListByOwner(_ context.Context, userID int64, page common.Page) ([]models.Patent, error) {
	return r.filter(page, func(p models.Patent) bool { return p.UserID != nil && *p.UserID == userID }), nil
}

func (r *memPatentRepo) ListByCategory(_ context.Context, category string, page common.Page) ([]models.Patent, error) {
	return r.filter(page, func(p models.Patent) bool { return p.Category == category }), nil
}

func (r *memPatentRepo) filter(page common.Page, keep func(models.Patent) bool) []models.Patent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Patent{}
	for i := len(r.order) - 1; i >= 0; i-- {
		if p, ok := r.items[r.order[i]]; ok && keep(p) {
			out = append(out, p)
		}
	}
	if page.Skip >= len(out) {
		return []models.Patent{}
	}
	out = out[page.Skip:]
	if len(out) > page.Limit {
		out = out[:page.Limit]
	}
	return out
}

func (r *memPatentRepo) Update(_ context.Context, p *models.Patent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return repository.ErrPatentNotFound
	}
	now := time.Now().UTC()
	p.UpdatedAt = &now
	r.items[p.ID] = *p
	return nil
}

func (r *memPatentRepo) Delete(_ context.Context, id string) (*models.Patent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, repository.ErrPatentNotFound
	}
	delete(r.items, id)
	return &p, nil
}

// emptyCompetitionRepo не содержит ни одного конкурса.
type emptyCompetitionRepo struct{}

func (emptyCompetitionRepo) Create(context.Context, *models.Competition) error { return nil }

func (emptyCompetitionRepo) GetByID(context.Context, int64) (*models.Competition, error) {
	return nil, repository.ErrCompetitionNotFound
}

func (emptyCompetitionRepo) List(context.Context, common.Page) ([]models.Competition, error) {
	return []models.Competition{}, nil
}

func (emptyCompetitionRepo) ListByOwner(context.Context, int64, common.Page) ([]models.Competition, error) {
	return []models.Competition{}, nil
}

func (emptyCompetitionRepo) Update(context.Context, *models.Competition) error {
	return repository.ErrCompetitionNotFound
}

func (emptyCompetitionRepo) Delete(context.Context, int64) (*models.Competition, error) {
	return nil, repository.ErrCompetitionNotFound
}

// memFileRepo хранит метаданные файлов в памяти.
type memFileRepo struct {
	mu    sync.Mutex
	items map[string]models.UploadedFile
}

func newMemFileRepo() *memFileRepo {
	return &memFileRepo{items: make(map[string]models.UploadedFile)}
}

func (r *memFileRepo) Create(_ context.Context, f *models.UploadedFile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f.ID = uuid.NewString()
	f.CreatedAt = time.Now().UTC()
	r.items[f.ID] = *f
	return nil
}

func (r *memFileRepo) GetByID(_ context.Context, id string) (*models.UploadedFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.items[id]
	if !ok {
		return nil, repository.ErrFileNotFound
	}
	return &f, nil
}

func (r *memFileRepo) List(context.Context, common.Page) ([]models.UploadedFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.UploadedFile, 0, len(r.items))
	for _, f := range r.items {
		out = append(out, f)
	}
	return out, nil
}

func (r *memFileRepo) Delete(_ context.Context, id string) (*models.UploadedFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.items[id]
	if !ok {
		return nil, repository.ErrFileNotFound
	}
	delete(r.items, id)
	return &f, nil
}

// memAnalyticsRepo запоминает записанные просмотры.
type memAnalyticsRepo struct {
	mu       sync.Mutex
	sessions []models.VisitorSession
	views    []models.PageView
}

func (r *memAnalyticsRepo) RecordVisit(_ context.Context, s *models.VisitorSession, v *models.PageView) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, *s)
	r.views = append(r.views, *v)
	return nil
}

func (r *memAnalyticsRepo) Aggregate(context.Context, time.Time, time.Time, int) (*models.TrafficStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &models.TrafficStats{PageViews: len(r.views), UniqueVisitors: len(r.sessions)}, nil
}

func (r *memAnalyticsRepo) RecentViews(_ context.Context, limit int) ([]models.PageView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit > len(r.views) {
		limit = len(r.views)
	}
	return append([]models.PageView(nil), r.views[:limit]...), nil
}

// fakePinger имитирует пул соединений.
type fakePinger struct {
	err   error
	stats sql.DBStats
}

func (p fakePinger) PingContext(context.Context) error { return p.err }
func (p fakePinger) Stats() sql.DBStats               { return p.stats }
