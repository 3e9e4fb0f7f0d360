package models

import "time"

// VisitorSession сессия посетителя, идентифицируется токеном клиента.
type VisitorSession struct {
	ID             string    `db:"id" json:"id"`
	SessionID      string    `db:"session_id" json:"sessionId"`
	IPAddress      *string   `db:"ip_address" json:"ipAddress,omitempty"`
	UserAgent      *string   `db:"user_agent" json:"userAgent,omitempty"`
	Browser        string    `db:"browser" json:"browser"`
	OS             string    `db:"os" json:"os"`
	Device         string    `db:"device" json:"device"`
	Country        *string   `db:"country" json:"country,omitempty"`
	City           *string   `db:"city" json:"city,omitempty"`
	FirstVisit     time.Time `db:"first_visit" json:"firstVisit"`
	LastVisit      time.Time `db:"last_visit" json:"lastVisit"`
	TotalPageViews int       `db:"total_page_views" json:"totalPageViews"`
	TotalTimeSpent int       `db:"total_time_spent" json:"totalTimeSpent"`
	IsUnique       bool      `db:"is_unique" json:"isUnique"`
}

// PageView один просмотр страницы. Записи только добавляются.
type PageView struct {
	ID           string    `db:"id" json:"id"`
	SessionID    string    `db:"session_id" json:"sessionId"`
	Path         string    `db:"path" json:"path"`
	Title        *string   `db:"title" json:"title,omitempty"`
	IPAddress    *string   `db:"ip_address" json:"ipAddress,omitempty"`
	UserAgent    *string   `db:"user_agent" json:"userAgent,omitempty"`
	Referer      *string   `db:"referer" json:"referer,omitempty"`
	VisitTime    time.Time `db:"visit_time" json:"visitTime"`
	ViewDuration int       `db:"view_duration" json:"viewDuration"`
}

// PageStat агрегат просмотров по странице.
type PageStat struct {
	Path  string  `db:"path" json:"path"`
	Title *string `db:"title" json:"title"`
	Views int     `db:"views" json:"views"`
}

// ReferrerStat агрегат переходов по источнику.
type ReferrerStat struct {
	Source string `db:"source" json:"source"`
	Visits int    `db:"visits" json:"visits"`
}

// BrowserStat агрегат сессий по браузеру.
type BrowserStat struct {
	Name       string  `db:"name" json:"name"`
	Count      int     `db:"count" json:"count"`
	Percentage float64 `db:"-" json:"percentage"`
}

// TrafficStats агрегаты посещаемости за окно времени.
type TrafficStats struct {
	PageViews      int
	UniqueVisitors int
	AvgTimeSeconds float64
	TopPages       []PageStat
	Referrers      []ReferrerStat
	Browsers       []BrowserStat
}
