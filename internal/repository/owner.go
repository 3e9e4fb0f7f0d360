package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// ErrOwnerNotFound возвращается, если запись ссылается на несуществующего пользователя.
var ErrOwnerNotFound = errors.New("owner does not exist")

// ownerLockKey ключ advisory-блокировки, под которой создаётся владелец.
const ownerLockKey int64 = 0x706f7274666f6c69

// lockOwner сериализует создание владельца между процессами до конца транзакции.
func lockOwner(ctx context.Context, tx *sqlx.Tx) error {
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, ownerLockKey); err != nil {
		return fmt.Errorf("owner lock: %w", err)
	}
	return nil
}

// resolveOwner определяет владельца новой записи внутри транзакции.
// Явный userID должен существовать. Без него берётся самый ранний пользователь,
// а если пользователей ещё нет, создаётся профиль по умолчанию.
func resolveOwner(ctx context.Context, tx *sqlx.Tx, userID *int64) (int64, error) {
	if userID != nil {
		var exists bool
		if err := tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, *userID); err != nil {
			return 0, fmt.Errorf("owner lookup: %w", err)
		}
		if !exists {
			return 0, ErrOwnerNotFound
		}
		return *userID, nil
	}

	id, err := firstUserID(ctx, tx)
	if err == nil {
		return id, nil
	}
	if !isNoRows(err) {
		return 0, fmt.Errorf("owner lookup: %w", err)
	}

	if err := lockOwner(ctx, tx); err != nil {
		return 0, err
	}
	// После блокировки владельца мог создать конкурент.
	if id, err = firstUserID(ctx, tx); err == nil {
		return id, nil
	} else if !isNoRows(err) {
		return 0, fmt.Errorf("owner lookup: %w", err)
	}

	owner := models.DefaultOwner()
	if err := insertUser(ctx, tx, &owner); err != nil {
		return 0, fmt.Errorf("create default owner: %w", err)
	}
	return owner.ID, nil
}

func firstUserID(ctx context.Context, tx *sqlx.Tx) (int64, error) {
	var id int64
	err := tx.GetContext(ctx, &id, `SELECT id FROM users ORDER BY created_at, id LIMIT 1`)
	return id, err
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
