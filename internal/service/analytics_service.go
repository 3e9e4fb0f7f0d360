package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/useragent"
)

const (
	DefaultStatsDays  = 30
	MaxStatsDays      = 365
	DefaultRecentSize = 50
	MaxRecentSize     = 500
	statsTop          = 10

	// maxRefererLen совпадает с размером колонки page_views.referer.
	maxRefererLen = 500
)

// AnalyticsRepository описывает хранилище посещений.
type AnalyticsRepository interface {
	RecordVisit(ctx context.Context, session *models.VisitorSession, view *models.PageView) error
	Aggregate(ctx context.Context, from, to time.Time, top int) (*models.TrafficStats, error)
	RecentViews(ctx context.Context, limit int) ([]models.PageView, error)
}

// Visit просмотр страницы вместе с данными запроса.
type Visit struct {
	SessionID string
	Path      string
	Title     *string
	Duration  int
	IP        string
	UserAgent string
	Referer   string
}

// AnalyticsService записывает просмотры и считает статистику посещаемости.
type AnalyticsService struct {
	repo AnalyticsRepository
	now  func() time.Time
}

// NewAnalyticsService создаёт сервис аналитики.
func NewAnalyticsService(repo AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo, now: time.Now}
}

// Track записывает просмотр и возвращает токен сессии.
// Если клиент не прислал токен, генерируется новый.
func (s *AnalyticsService) Track(ctx context.Context, v Visit) (string, error) {
	sessionID := strings.TrimSpace(v.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	path := strings.TrimSpace(v.Path)
	if path == "" {
		path = "/"
	}
	duration := v.Duration
	if duration < 0 {
		duration = 0
	}

	ua := useragent.Parse(v.UserAgent)
	now := s.now().UTC()

	session := &models.VisitorSession{
		SessionID:      sessionID,
		IPAddress:      optionalString(v.IP),
		UserAgent:      optionalString(v.UserAgent),
		Browser:        ua.Browser,
		OS:             ua.OS,
		Device:         ua.Device,
		FirstVisit:     now,
		LastVisit:      now,
		TotalTimeSpent: duration,
	}
	view := &models.PageView{
		SessionID:    sessionID,
		Path:         path,
		Title:        v.Title,
		IPAddress:    optionalString(v.IP),
		UserAgent:    optionalString(v.UserAgent),
		Referer:      optionalString(truncateRunes(v.Referer, maxRefererLen)),
		VisitTime:    now,
		ViewDuration: duration,
	}

	if err := s.repo.RecordVisit(ctx, session, view); err != nil {
		return "", err
	}
	return sessionID, nil
}

// Stats считает статистику за последние days дней.
// Окно начинается в полночь UTC (days-1) дней назад и заканчивается текущим моментом.
func (s *AnalyticsService) Stats(ctx context.Context, days int) (*dto.StatsResponse, error) {
	if days <= 0 {
		days = DefaultStatsDays
	}
	if days > MaxStatsDays {
		days = MaxStatsDays
	}

	end := s.now().UTC()
	start := startOfWindow(end, days)

	stats, err := s.repo.Aggregate(ctx, start, end, statsTop)
	if err != nil {
		return nil, err
	}

	browsers := stats.Browsers
	for i := range browsers {
		browsers[i].Percentage = percentage(browsers[i].Count, stats.UniqueVisitors)
	}

	return &dto.StatsResponse{
		PageViews:                stats.PageViews,
		UniqueVisitors:           stats.UniqueVisitors,
		AverageTimeOnSite:        formatDuration(stats.AvgTimeSeconds),
		AverageTimeOnSiteSeconds: math.Round(stats.AvgTimeSeconds*10) / 10,
		TopPages:                 nonNil(stats.TopPages),
		Referrers:                nonNil(stats.Referrers),
		Browsers:                 nonNil(browsers),
		DateRange:                dto.DateRange{Start: start, End: end, Days: days},
	}, nil
}

// Recent возвращает последние просмотры страниц.
func (s *AnalyticsService) Recent(ctx context.Context, limit int) (*dto.RecentViewsResponse, error) {
	if limit <= 0 {
		limit = DefaultRecentSize
	}
	if limit > MaxRecentSize {
		limit = MaxRecentSize
	}

	views, err := s.repo.RecentViews(ctx, limit)
	if err != nil {
		return nil, err
	}
	views = nonNil(views)
	return &dto.RecentViewsResponse{RecentViews: views, Total: len(views)}, nil
}

func startOfWindow(now time.Time, days int) time.Time {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, -(days - 1))
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)*1000/float64(total)) / 10
}

// formatDuration форматирует секунды как «2m 45s».
func formatDuration(seconds float64) string {
	total := int(math.Round(seconds))
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%dm %ds", total/60, total%60)
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// truncateRunes обрезает строку до limit символов, не разрывая многобайтовые руны.
func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
