package models

import "time"

// User владелец портфолио. Имена в JSON совпадают с тем, что ждёт фронтенд.
type User struct {
	ID          int64      `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Title       *string    `db:"title" json:"title,omitempty"`
	Email       string     `db:"email" json:"email"`
	Phone       *string    `db:"phone" json:"phone,omitempty"`
	Bio         *string    `db:"bio" json:"description,omitempty"`
	AvatarURL   *string    `db:"avatar_url" json:"avatar,omitempty"`
	GithubURL   *string    `db:"github_url" json:"github,omitempty"`
	LinkedinURL *string    `db:"linkedin_url" json:"linkedin,omitempty"`
	Location    *string    `db:"location" json:"location,omitempty"`
	WebsiteURL  *string    `db:"website_url" json:"website,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

// Профиль владельца, который создаётся при первом запуске или первой записи.
const (
	DefaultOwnerName  = "Portfolio User"
	DefaultOwnerEmail = "user@example.com"
)

// DefaultOwner возвращает профиль-заглушку владельца портфолио.
func DefaultOwner() User {
	title := "Software Engineer"
	bio := "Developer who loves building things"
	location := "Taiwan"
	return User{
		Name:     DefaultOwnerName,
		Email:    DefaultOwnerEmail,
		Title:    &title,
		Bio:      &bio,
		Location: &location,
	}
}
