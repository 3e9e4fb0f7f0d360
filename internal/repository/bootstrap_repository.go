package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// BootstrapData стартовое содержимое пустой базы.
type BootstrapData struct {
	Owner        models.User
	Competitions []models.Competition
	Skills       []models.Skill
	Projects     []models.Project
}

// BootstrapRepository первичное наполнение базы.
type BootstrapRepository struct {
	db *sqlx.DB
}

// NewBootstrapRepository создаёт экземпляр репозитория.
func NewBootstrapRepository(db *sqlx.DB) *BootstrapRepository {
	return &BootstrapRepository{db: db}
}

// InitializeOwner записывает владельца и стартовое содержимое, только если пользователей ещё нет.
// Проверка и вставка идут под advisory-блокировкой, поэтому одновременные запуски
// создают ровно одного владельца. Возвращает true, если данные были записаны.
func (r *BootstrapRepository) InitializeOwner(ctx context.Context, data *BootstrapData) (bool, error) {
	created := false
	err := common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := lockOwner(ctx, tx); err != nil {
			return err
		}

		var exists bool
		if err := tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM users)`); err != nil {
			return fmt.Errorf("bootstrap repository: check users %w", err)
		}
		if exists {
			return nil
		}

		if err := insertUser(ctx, tx, &data.Owner); err != nil {
			return fmt.Errorf("bootstrap repository: insert owner %w", err)
		}
		ownerID := data.Owner.ID

		for i := range data.Competitions {
			data.Competitions[i].UserID = &ownerID
			if err := insertCompetition(ctx, tx, &data.Competitions[i]); err != nil {
				return fmt.Errorf("bootstrap repository: insert competition %w", err)
			}
		}
		for i := range data.Skills {
			data.Skills[i].UserID = &ownerID
			if err := insertSkill(ctx, tx, &data.Skills[i]); err != nil {
				return fmt.Errorf("bootstrap repository: insert skill %w", err)
			}
		}
		for i := range data.Projects {
			data.Projects[i].UserID = &ownerID
			if err := insertProject(ctx, tx, &data.Projects[i]); err != nil {
				return fmt.Errorf("bootstrap repository: insert project %w", err)
			}
		}

		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}
