package dto

import (
	"time"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// LoginResponse is returned on a successful admin login.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TrackResponse echoes the session token the client should keep using.
type TrackResponse struct {
	Status    string `json:"status"`
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// DateRange describes the window statistics were computed over.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Days  int       `json:"days"`
}

// StatsResponse is the analytics summary for a window of days.
type StatsResponse struct {
	PageViews                int                   `json:"pageViews"`
	UniqueVisitors           int                   `json:"uniqueVisitors"`
	AverageTimeOnSite        string                `json:"averageTimeOnSite"`
	AverageTimeOnSiteSeconds float64               `json:"averageTimeOnSiteSeconds"`
	TopPages                 []models.PageStat     `json:"topPages"`
	Referrers                []models.ReferrerStat `json:"referrers"`
	Browsers                 []models.BrowserStat  `json:"browsers"`
	DateRange                DateRange             `json:"dateRange"`
}

// RecentViewsResponse lists the latest page views.
type RecentViewsResponse struct {
	RecentViews []models.PageView `json:"recentViews"`
	Total       int               `json:"total"`
}
