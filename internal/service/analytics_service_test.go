package service

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAnalyticsService_TrackGeneratesSession(t *testing.T) {
	ctx := context.Background()
	repo := new(mockAnalyticsRepo)
	now := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)

	var session *models.VisitorSession
	var view *models.PageView
	repo.On("RecordVisit", ctx, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		session = args.Get(1).(*models.VisitorSession)
		view = args.Get(2).(*models.PageView)
	}).Return(nil)

	svc := NewAnalyticsService(repo)
	svc.now = fixedClock(now)

	token, err := svc.Track(ctx, Visit{
		UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 14_6 like Mac OS X) Mobile Safari/604.1",
		IP:        "10.0.0.1",
		Duration:  -5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, token, session.SessionID)
	assert.Equal(t, "Safari", session.Browser)
	assert.Equal(t, "iOS", session.OS)
	assert.Equal(t, models.DeviceMobile, session.Device)
	assert.Equal(t, now, session.FirstVisit)
	assert.Equal(t, "/", view.Path)
	assert.Equal(t, 0, view.ViewDuration)
	assert.Nil(t, view.Referer)
	assert.Equal(t, "10.0.0.1", *view.IPAddress)
}

func TestAnalyticsService_TrackTruncatesReferer(t *testing.T) {
	ctx := context.Background()
	repo := new(mockAnalyticsRepo)

	var view *models.PageView
	repo.On("RecordVisit", ctx, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		view = args.Get(2).(*models.PageView)
	}).Return(nil)
	svc := NewAnalyticsService(repo)

	long := "https://example.com/?q=" + strings.Repeat("ж", 600)
	_, err := svc.Track(ctx, Visit{Referer: long})
	require.NoError(t, err)

	require.NotNil(t, view.Referer)
	assert.Equal(t, maxRefererLen, utf8.RuneCountInString(*view.Referer))
	assert.True(t, strings.HasPrefix(long, *view.Referer))
	assert.True(t, utf8.ValidString(*view.Referer))

	_, err = svc.Track(ctx, Visit{Referer: "https://google.com"})
	require.NoError(t, err)
	assert.Equal(t, "https://google.com", *view.Referer)
}

func TestAnalyticsService_TrackKeepsClientSession(t *testing.T) {
	ctx := context.Background()
	repo := new(mockAnalyticsRepo)
	repo.On("RecordVisit", ctx, mock.MatchedBy(func(s *models.VisitorSession) bool {
		return s.SessionID == "abc"
	}), mock.Anything).Return(nil)
	svc := NewAnalyticsService(repo)

	token, err := svc.Track(ctx, Visit{SessionID: " abc ", Path: "/about"})
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
	repo.AssertExpectations(t)
}

func TestAnalyticsService_StatsWindow(t *testing.T) {
	ctx := context.Background()
	repo := new(mockAnalyticsRepo)
	now := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)
	wantStart := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)

	repo.On("Aggregate", ctx, wantStart, now, 10).Return(&models.TrafficStats{
		PageViews:      12,
		UniqueVisitors: 3,
		AvgTimeSeconds: 165,
		Browsers: []models.BrowserStat{
			{Name: "Chrome", Count: 2},
			{Name: "Firefox", Count: 1},
		},
	}, nil)

	svc := NewAnalyticsService(repo)
	svc.now = fixedClock(now)

	stats, err := svc.Stats(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 12, stats.PageViews)
	assert.Equal(t, 3, stats.UniqueVisitors)
	assert.Equal(t, "2m 45s", stats.AverageTimeOnSite)
	assert.Equal(t, 66.7, stats.Browsers[0].Percentage)
	assert.Equal(t, 33.3, stats.Browsers[1].Percentage)
	assert.NotNil(t, stats.TopPages)
	assert.NotNil(t, stats.Referrers)
	assert.Equal(t, 7, stats.DateRange.Days)
	assert.Equal(t, wantStart, stats.DateRange.Start)
}

func TestAnalyticsService_StatsWindowStartsAtUTCMidnight(t *testing.T) {
	ctx := context.Background()
	repo := new(mockAnalyticsRepo)
	// 02:00 11 июня в UTC+8 это ещё 10 июня по UTC.
	now := time.Date(2024, 6, 11, 2, 0, 0, 0, time.FixedZone("UTC+8", 8*60*60))
	wantStart := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	repo.On("Aggregate", ctx, wantStart, now.UTC(), 10).Return(&models.TrafficStats{}, nil)

	svc := NewAnalyticsService(repo)
	svc.now = fixedClock(now)

	stats, err := svc.Stats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, wantStart, stats.DateRange.Start)
	repo.AssertExpectations(t)
}

func TestAnalyticsService_StatsDefaultDays(t *testing.T) {
	ctx := context.Background()
	repo := new(mockAnalyticsRepo)
	repo.On("Aggregate", ctx, mock.Anything, mock.Anything, 10).Return(&models.TrafficStats{}, nil)
	svc := NewAnalyticsService(repo)

	stats, err := svc.Stats(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultStatsDays, stats.DateRange.Days)
	assert.Equal(t, "0m 0s", stats.AverageTimeOnSite)
	assert.Empty(t, stats.Browsers)
}

func TestAnalyticsService_RecentLimits(t *testing.T) {
	ctx := context.Background()
	repo := new(mockAnalyticsRepo)
	repo.On("RecentViews", ctx, DefaultRecentSize).Return([]models.PageView{{ID: "1"}}, nil)
	repo.On("RecentViews", ctx, MaxRecentSize).Return([]models.PageView(nil), nil)
	svc := NewAnalyticsService(repo)

	res, err := svc.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)

	res, err = svc.Recent(ctx, 10000)
	require.NoError(t, err)
	assert.NotNil(t, res.RecentViews)
	assert.Equal(t, 0, res.Total)
}
