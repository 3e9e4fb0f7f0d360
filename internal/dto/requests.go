package dto

// Request bodies share one struct for create and update. A nil field means
// "not provided": create falls back to defaults, update leaves the stored value as is.

// UserInput is the body of user create/update requests.
type UserInput struct {
	Name        *string `json:"name" binding:"omitempty,notblank,max=100"`
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Email       *string `json:"email" binding:"omitempty,email,max=120"`
	Phone       *string `json:"phone" binding:"omitempty,max=20"`
	Description *string `json:"description"`
	Avatar      *string `json:"avatar" binding:"omitempty,max=255"`
	Github      *string `json:"github" binding:"omitempty,max=255"`
	Linkedin    *string `json:"linkedin" binding:"omitempty,max=255"`
	Location    *string `json:"location" binding:"omitempty,max=100"`
	Website     *string `json:"website" binding:"omitempty,max=255"`
}

// PatentInput is the body of patent create/update requests.
type PatentInput struct {
	UserID          *int64    `json:"userId"`
	Title           *string   `json:"title" binding:"omitempty,notblank,max=300"`
	PatentNumber    *string   `json:"patentNumber" binding:"omitempty,max=100"`
	Description     *string   `json:"description"`
	Category        *string   `json:"category" binding:"omitempty,max=50"`
	Status          *string   `json:"status" binding:"omitempty,max=50"`
	FilingDate      *string   `json:"filingDate"`
	GrantDate       *string   `json:"grantDate"`
	PublicationDate *string   `json:"publicationDate"`
	PriorityDate    *string   `json:"priorityDate"`
	Inventors       *[]string `json:"inventors"`
	Assignee        *string   `json:"assignee" binding:"omitempty,max=200"`
	Country         *string   `json:"country" binding:"omitempty,max=100"`
	PatentURL       *string   `json:"patentUrl" binding:"omitempty,max=500"`
	Classification  *string   `json:"classification" binding:"omitempty,max=200"`
	Featured        *bool     `json:"featured"`
}

// CompetitionInput is the body of competition create/update requests.
type CompetitionInput struct {
	UserID              *int64    `json:"userId"`
	Name                *string   `json:"name" binding:"omitempty,notblank,max=200"`
	Result              *string   `json:"result" binding:"omitempty,max=100"`
	Description         *string   `json:"description"`
	DetailedDescription *string   `json:"detailedDescription"`
	Date                *string   `json:"date"`
	CertificateURL      *string   `json:"certificateUrl" binding:"omitempty,max=500"`
	ProjectImages       *[]string `json:"projectImages"`
	Category            *string   `json:"category" binding:"omitempty,max=50"`
	Featured            *bool     `json:"featured"`
	Organizer           *string   `json:"organizer" binding:"omitempty,max=200"`
	Location            *string   `json:"location" binding:"omitempty,max=200"`
	Award               *string   `json:"award" binding:"omitempty,max=200"`
	TeamSize            *int      `json:"teamSize" binding:"omitempty,min=1"`
	Role                *string   `json:"role" binding:"omitempty,max=100"`
	Technologies        *[]string `json:"technologies"`
	ProjectURL          *string   `json:"projectUrl" binding:"omitempty,max=500"`
}

// NewsInput is the body of media coverage create/update requests.
type NewsInput struct {
	UserID          *int64    `json:"userId"`
	Title           *string   `json:"title" binding:"omitempty,notblank,max=300"`
	MediaName       *string   `json:"mediaName" binding:"omitempty,max=200"`
	PublicationDate *string   `json:"publicationDate"`
	Author          *string   `json:"author" binding:"omitempty,max=200"`
	Summary         *string   `json:"summary"`
	Content         *string   `json:"content"`
	ArticleURL      *string   `json:"articleUrl" binding:"omitempty,max=500"`
	ImageURL        *string   `json:"imageUrl" binding:"omitempty,max=500"`
	Tags            *[]string `json:"tags"`
	Category        *string   `json:"category" binding:"omitempty,max=100"`
	Status          *string   `json:"status" binding:"omitempty,max=50"`
	Featured        *bool     `json:"featured"`
	ViewCount       *int      `json:"viewCount" binding:"omitempty,min=0"`
}

// ProjectInput is the body of project create/update requests.
type ProjectInput struct {
	UserID       *int64    `json:"userId"`
	Title        *string   `json:"title" binding:"omitempty,notblank,max=200"`
	Description  *string   `json:"description"`
	Technologies *[]string `json:"technologies"`
	ImageURL     *string   `json:"imageUrl" binding:"omitempty,max=500"`
	GithubURL    *string   `json:"githubUrl" binding:"omitempty,max=500"`
	LiveURL      *string   `json:"liveUrl" binding:"omitempty,max=500"`
	Featured     *bool     `json:"featured"`
}

// SkillInput is the body of skill create/update requests.
type SkillInput struct {
	UserID   *int64  `json:"userId"`
	Name     *string `json:"name" binding:"omitempty,notblank,max=100"`
	Level    *int    `json:"level" binding:"omitempty,min=0,max=100"`
	Category *string `json:"category" binding:"omitempty,max=50"`
	Icon     *string `json:"icon" binding:"omitempty,max=100"`
}

// AboutValueInput is the body of about value create/update requests.
type AboutValueInput struct {
	Icon        *string   `json:"icon" binding:"omitempty,max=100"`
	Title       *string   `json:"title" binding:"omitempty,notblank,max=200"`
	Subtitle    *string   `json:"subtitle" binding:"omitempty,max=200"`
	Description *string   `json:"description"`
	Details     *[]string `json:"details"`
	OrderIndex  *int      `json:"orderIndex" binding:"omitempty,min=0"`
	IsActive    *bool     `json:"isActive"`
}

// ReorderRequest lists about value ids in their new display order.
type ReorderRequest struct {
	OrderedIDs []string `json:"orderedIds" binding:"required,min=1,dive,notblank"`
}

// LoginRequest carries the shared admin password.
type LoginRequest struct {
	Password string `json:"password"`
}

// TrackRequest is a page view reported by the frontend.
type TrackRequest struct {
	SessionID string  `json:"sessionId" binding:"max=100"`
	Path      string  `json:"path" binding:"max=500"`
	Title     *string `json:"title" binding:"omitempty,max=300"`
	Duration  int     `json:"duration" binding:"min=0"`
}

// Base64UploadRequest is a file upload sent as JSON.
// Data may be plain base64 or a data URL ("data:image/png;base64,...").
type Base64UploadRequest struct {
	Name string `json:"name" binding:"required,notblank"`
	Type string `json:"type"`
	Size int64  `json:"size"`
	Data string `json:"data" binding:"required"`
}
