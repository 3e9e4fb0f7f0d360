package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
)

// BootstrapRepository записывает стартовые данные в пустую базу.
type BootstrapRepository interface {
	InitializeOwner(ctx context.Context, data *repository.BootstrapData) (bool, error)
}

// SeedService наполняет пустую базу профилем владельца и примерами содержимого.
type SeedService struct {
	repo BootstrapRepository
}

// NewSeedService создаёт сервис начального наполнения.
func NewSeedService(repo BootstrapRepository) *SeedService {
	return &SeedService{repo: repo}
}

// EnsureDefaults создаёт владельца и примеры, если пользователей ещё нет.
// Повторный вызов ничего не пишет. Возвращает true, если данные были созданы.
func (s *SeedService) EnsureDefaults(ctx context.Context) (bool, error) {
	data := DefaultContent()
	created, err := s.repo.InitializeOwner(ctx, data)
	if err != nil {
		return false, fmt.Errorf("seed service: %w", err)
	}

	entry := logger.FromContext(ctx)
	if !created {
		entry.Info("владелец портфолио уже существует, начальное наполнение пропущено")
		return false, nil
	}

	entry.WithFields(logrus.Fields{
		"owner_id":     data.Owner.ID,
		"competitions": len(data.Competitions),
		"skills":       len(data.Skills),
		"projects":     len(data.Projects),
	}).Info("создан владелец портфолио и примеры содержимого")
	return true, nil
}

// DefaultContent профиль владельца по умолчанию и примеры содержимого.
func DefaultContent() *repository.BootstrapData {
	str := func(s string) *string { return &s }
	date := func(s string) *models.Date {
		d, _ := models.ParseDate(s)
		return &d
	}

	return &repository.BootstrapData{
		Owner: models.DefaultOwner(),
		Competitions: []models.Competition{
			{
				Name:         "National College Programming Contest",
				Result:       "First Place",
				Description:  str("Built an algorithmic solution set under time pressure"),
				Date:         date("2023-11-15"),
				Category:     models.CompetitionDefaultCategory,
				Featured:     true,
				Organizer:    str("Ministry of Education"),
				TeamSize:     3,
				Role:         str("Team Lead"),
				Technologies: models.StringList{"C++", "Python", "Algorithms"},
			},
			{
				Name:          "Smart City Innovation Hackathon",
				Result:        "Best Technical Award",
				Description:   str("IoT-based traffic monitoring prototype"),
				Date:          date("2023-08-20"),
				Category:      models.CompetitionDefaultCategory,
				Featured:      true,
				Organizer:     str("City Government"),
				TeamSize:      4,
				Role:          str("Full-stack Developer"),
				Technologies:  models.StringList{"React", "Node.js", "MQTT"},
				ProjectImages: models.StringList{},
			},
		},
		Skills: []models.Skill{
			{Name: "JavaScript", Level: 90, Category: "frontend"},
			{Name: "Python", Level: 85, Category: "backend"},
			{Name: "React", Level: 88, Category: "frontend"},
			{Name: "Node.js", Level: 80, Category: "backend"},
			{Name: "MySQL", Level: 75, Category: "database"},
		},
		Projects: []models.Project{
			{
				Title:        "Personal Portfolio",
				Description:  str("Portfolio website with an admin panel and visitor analytics"),
				Technologies: models.StringList{"Next.js", "TypeScript", "Go", "PostgreSQL"},
				Featured:     true,
			},
		},
	}
}
