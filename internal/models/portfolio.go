package models

import "time"

// Patent патент или заявка на патент.
type Patent struct {
	ID              string     `db:"id" json:"id"`
	UserID          *int64     `db:"user_id" json:"userId,omitempty"`
	Title           string     `db:"title" json:"title"`
	PatentNumber    *string    `db:"patent_number" json:"patentNumber,omitempty"`
	Description     *string    `db:"description" json:"description,omitempty"`
	Category        string     `db:"category" json:"category"`
	Status          string     `db:"status" json:"status"`
	FilingDate      *Date      `db:"filing_date" json:"filingDate,omitempty"`
	GrantDate       *Date      `db:"grant_date" json:"grantDate,omitempty"`
	PublicationDate *Date      `db:"publication_date" json:"publicationDate,omitempty"`
	PriorityDate    *Date      `db:"priority_date" json:"priorityDate,omitempty"`
	Inventors       StringList `db:"inventors" json:"inventors"`
	Assignee        *string    `db:"assignee" json:"assignee,omitempty"`
	Country         *string    `db:"country" json:"country,omitempty"`
	PatentURL       *string    `db:"patent_url" json:"patentUrl,omitempty"`
	Classification  *string    `db:"classification" json:"classification,omitempty"`
	Featured        bool       `db:"featured" json:"featured"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt       *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

// Competition участие в конкурсе. Идентификатор последовательный.
type Competition struct {
	ID                  int64      `db:"id" json:"id"`
	UserID              *int64     `db:"user_id" json:"userId,omitempty"`
	Name                string     `db:"name" json:"name"`
	Result              string     `db:"result" json:"result"`
	Description         *string    `db:"description" json:"description,omitempty"`
	DetailedDescription *string    `db:"detailed_description" json:"detailedDescription,omitempty"`
	Date                *Date      `db:"date" json:"date,omitempty"`
	CertificateURL      *string    `db:"certificate_url" json:"certificateUrl,omitempty"`
	ProjectImages       StringList `db:"project_images" json:"projectImages"`
	Category            string     `db:"category" json:"category"`
	Featured            bool       `db:"featured" json:"featured"`
	Organizer           *string    `db:"organizer" json:"organizer,omitempty"`
	Location            *string    `db:"location" json:"location,omitempty"`
	Award               *string    `db:"award" json:"award,omitempty"`
	TeamSize            int        `db:"team_size" json:"teamSize"`
	Role                *string    `db:"role" json:"role,omitempty"`
	Technologies        StringList `db:"technologies" json:"technologies"`
	ProjectURL          *string    `db:"project_url" json:"projectUrl,omitempty"`
	CreatedAt           time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt           *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

// NewsArticle публикация в СМИ о владельце портфолио.
type NewsArticle struct {
	ID              string     `db:"id" json:"id"`
	UserID          *int64     `db:"user_id" json:"userId,omitempty"`
	Title           string     `db:"title" json:"title"`
	MediaName       *string    `db:"media_name" json:"mediaName,omitempty"`
	PublicationDate *Date      `db:"publication_date" json:"publicationDate,omitempty"`
	Author          *string    `db:"author" json:"author,omitempty"`
	Summary         *string    `db:"summary" json:"summary,omitempty"`
	Content         *string    `db:"content" json:"content,omitempty"`
	ArticleURL      *string    `db:"article_url" json:"articleUrl,omitempty"`
	ImageURL        *string    `db:"image_url" json:"imageUrl,omitempty"`
	Tags            StringList `db:"tags" json:"tags"`
	Category        *string    `db:"category" json:"category,omitempty"`
	Status          string     `db:"status" json:"status"`
	Featured        bool       `db:"featured" json:"featured"`
	ViewCount       int        `db:"view_count" json:"viewCount"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt       *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

// Project проект в портфолио.
type Project struct {
	ID           string     `db:"id" json:"id"`
	UserID       *int64     `db:"user_id" json:"userId,omitempty"`
	Title        string     `db:"title" json:"title"`
	Description  *string    `db:"description" json:"description,omitempty"`
	Technologies StringList `db:"technologies" json:"technologies"`
	ImageURL     *string    `db:"image_url" json:"imageUrl,omitempty"`
	GithubURL    *string    `db:"github_url" json:"githubUrl,omitempty"`
	LiveURL      *string    `db:"live_url" json:"liveUrl,omitempty"`
	Featured     bool       `db:"featured" json:"featured"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

// Skill навык с уровнем владения от 0 до 100.
type Skill struct {
	ID        string     `db:"id" json:"id"`
	UserID    *int64     `db:"user_id" json:"userId,omitempty"`
	Name      string     `db:"name" json:"name"`
	Level     int        `db:"level" json:"level"`
	Category  string     `db:"category" json:"category"`
	Icon      *string    `db:"icon" json:"icon,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

// AboutValue карточка ценностей на странице «Обо мне».
type AboutValue struct {
	ID          string     `db:"id" json:"id"`
	Icon        *string    `db:"icon" json:"icon,omitempty"`
	Title       string     `db:"title" json:"title"`
	Subtitle    *string    `db:"subtitle" json:"subtitle,omitempty"`
	Description *string    `db:"description" json:"description,omitempty"`
	Details     StringList `db:"details" json:"details"`
	OrderIndex  int        `db:"order_index" json:"orderIndex"`
	IsActive    bool       `db:"is_active" json:"isActive"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}
