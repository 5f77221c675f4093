package notificationrepo

import (
	"context"
	"database/sql"

	"github.com/gardenus/matchledger/internal/domain"
	"github.com/gardenus/matchledger/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	query := `
        INSERT INTO notifications (uid, type, title, body, target_uid, created_at)
        VALUES ($1, $2, $3, $4, NULLIF($5, ''), now())
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, n.UID, n.Type, n.Title, n.Body, n.TargetUID).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		zap.L().Error("can't create notification", zap.Error(err))
		return nil, err
	}
	return n, nil
}

func (r *Repository) ListByUser(ctx context.Context, uid string, onlyUnread bool, limit int) ([]domain.Notification, error) {
	query := `
        SELECT id, uid, type, title, body, COALESCE(target_uid, ''), is_read, created_at
        FROM notifications
        WHERE uid = $1 AND (NOT $2 OR is_read = FALSE)
        ORDER BY created_at DESC
        LIMIT $3
    `
	rows, err := r.db.Query(ctx, query, uid, onlyUnread, limit)
	if err != nil {
		zap.L().Error("can't query notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.UID, &n.Type, &n.Title, &n.Body, &n.TargetUID, &n.IsRead, &n.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan notification row", zap.Error(err))
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// MarkRead flips is_read for one of the user's notifications. Returns
// false when the notification does not belong to the user or is absent.
func (r *Repository) MarkRead(ctx context.Context, uid string, id int64) (bool, error) {
	query := `
        UPDATE notifications
        SET is_read = TRUE
        WHERE id = $1 AND uid = $2
    `
	tag, err := r.db.Exec(ctx, query, id, uid)
	if err != nil {
		zap.L().Error("can't mark notification read", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// UserName returns the display name for a uid, falling back to the uid
// itself when the profile is absent or unnamed.
func (r *Repository) UserName(ctx context.Context, uid string) string {
	query := `
        SELECT name
        FROM users
        WHERE uid = $1
    `
	var name sql.NullString
	if err := r.db.QueryRow(ctx, query, uid).Scan(&name); err != nil {
		zap.L().Warn("can't resolve user name", zap.String("uid", uid), zap.Error(err))
		return uid
	}
	if name.String == "" {
		return uid
	}
	return name.String
}
