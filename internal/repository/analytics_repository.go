package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

const (
	sessionColumns = `id, session_id, ip_address, user_agent, browser, os, device, country, city,
		first_visit, last_visit, total_page_views, total_time_spent, is_unique`
	pageViewColumns = `id, session_id, path, title, ip_address, user_agent, referer, visit_time, view_duration`
)

// AnalyticsRepository пишет просмотры страниц и считает по ним статистику.
type AnalyticsRepository struct {
	db *sqlx.DB
}

// NewAnalyticsRepository создаёт экземпляр репозитория.
func NewAnalyticsRepository(db *sqlx.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// RecordVisit создаёт или продлевает сессию и добавляет просмотр одной транзакцией.
// Для существующей сессии счётчик просмотров увеличивается, а is_unique сбрасывается.
func (r *AnalyticsRepository) RecordVisit(ctx context.Context, session *models.VisitorSession, view *models.PageView) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		session.ID = uuid.NewString()
		upsert := `
			INSERT INTO visitor_sessions (
				id, session_id, ip_address, user_agent, browser, os, device,
				first_visit, last_visit, total_page_views, total_time_spent, is_unique
			) VALUES (
				:id, :session_id, :ip_address, :user_agent, :browser, :os, :device,
				:first_visit, :last_visit, 1, :total_time_spent, TRUE
			)
			ON CONFLICT (session_id) DO UPDATE SET
				last_visit = EXCLUDED.last_visit,
				total_page_views = visitor_sessions.total_page_views + 1,
				total_time_spent = visitor_sessions.total_time_spent + EXCLUDED.total_time_spent,
				is_unique = FALSE
			RETURNING ` + sessionColumns
		if err := common.NamedGet(ctx, tx, upsert, session, session); err != nil {
			return fmt.Errorf("analytics repository: upsert session %w", err)
		}

		view.ID = uuid.NewString()
		view.SessionID = session.SessionID
		insert := `
			INSERT INTO page_views (id, session_id, path, title, ip_address, user_agent, referer, visit_time, view_duration)
			VALUES (:id, :session_id, :path, :title, :ip_address, :user_agent, :referer, :visit_time, :view_duration)
			RETURNING ` + pageViewColumns
		if err := common.NamedGet(ctx, tx, insert, view, view); err != nil {
			return fmt.Errorf("analytics repository: insert page view %w", err)
		}
		return nil
	})
}

// Aggregate считает статистику за [from, to] на одном снимке данных.
// Топы упорядочены по убыванию счётчика, при равенстве по ключу группировки.
func (r *AnalyticsRepository) Aggregate(ctx context.Context, from, to time.Time, top int) (*models.TrafficStats, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("analytics repository: begin tx %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stats := &models.TrafficStats{}

	if err := tx.GetContext(ctx, &stats.PageViews,
		`SELECT COUNT(*) FROM page_views WHERE visit_time BETWEEN $1 AND $2`, from, to); err != nil {
		return nil, fmt.Errorf("analytics repository: count page views %w", err)
	}

	var sessions struct {
		Count   int     `db:"sessions"`
		AvgTime float64 `db:"avg_time"`
	}
	if err := tx.GetContext(ctx, &sessions, `
		SELECT COUNT(*) AS sessions, COALESCE(AVG(total_time_spent), 0)::float8 AS avg_time
		FROM visitor_sessions
		WHERE first_visit BETWEEN $1 AND $2`, from, to); err != nil {
		return nil, fmt.Errorf("analytics repository: summarize sessions %w", err)
	}
	stats.UniqueVisitors = sessions.Count
	stats.AvgTimeSeconds = sessions.AvgTime

	if stats.TopPages, err = common.SelectAll[models.PageStat](ctx, tx, `
		SELECT path, title, COUNT(*) AS views
		FROM page_views
		WHERE visit_time BETWEEN $1 AND $2
		GROUP BY path, title
		ORDER BY views DESC, path ASC, title ASC NULLS FIRST
		LIMIT $3`, from, to, top); err != nil {
		return nil, fmt.Errorf("analytics repository: top pages %w", err)
	}

	if stats.Referrers, err = common.SelectAll[models.ReferrerStat](ctx, tx, `
		SELECT referer AS source, COUNT(*) AS visits
		FROM page_views
		WHERE visit_time BETWEEN $1 AND $2 AND referer IS NOT NULL AND referer <> ''
		GROUP BY referer
		ORDER BY visits DESC, referer ASC
		LIMIT $3`, from, to, top); err != nil {
		return nil, fmt.Errorf("analytics repository: referrers %w", err)
	}

	if stats.Browsers, err = common.SelectAll[models.BrowserStat](ctx, tx, `
		SELECT browser AS name, COUNT(*) AS "count"
		FROM visitor_sessions
		WHERE first_visit BETWEEN $1 AND $2
		GROUP BY browser
		ORDER BY "count" DESC, browser ASC
		LIMIT $3`, from, to, top); err != nil {
		return nil, fmt.Errorf("analytics repository: browsers %w", err)
	}

	return stats, nil
}

// RecentViews возвращает последние просмотры страниц.
func (r *AnalyticsRepository) RecentViews(ctx context.Context, limit int) ([]models.PageView, error) {
	views, err := common.SelectAll[models.PageView](ctx, r.db,
		`SELECT `+pageViewColumns+` FROM page_views ORDER BY visit_time DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics repository: recent views %w", err)
	}
	return views, nil
}
