package authcoderepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

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

func (r *Repository) Create(ctx context.Context, phone, codeHash string, expiresAt time.Time) (*domain.AuthCode, error) {
	query := `
        INSERT INTO auth_codes (phone, code_hash, expires_at, created_at)
        VALUES ($1, $2, $3, now())
        RETURNING id, created_at
    `
	code := &domain.AuthCode{
		Phone:     phone,
		CodeHash:  codeHash,
		ExpiresAt: expiresAt,
	}
	err := r.db.QueryRow(ctx, query, phone, codeHash, expiresAt).Scan(&code.ID, &code.CreatedAt)
	if err != nil {
		zap.L().Error("can't create auth code", zap.Error(err))
		return nil, err
	}
	return code, nil
}

// GetLatestActive returns the newest unused, unexpired code for a phone.
func (r *Repository) GetLatestActive(ctx context.Context, phone string) (*domain.AuthCode, error) {
	query := `
        SELECT id, phone, code_hash, used, expires_at, created_at
        FROM auth_codes
        WHERE phone = $1 AND used = FALSE AND expires_at > now()
        ORDER BY created_at DESC
        LIMIT 1
    `
	var code domain.AuthCode
	err := r.db.QueryRow(ctx, query, phone).Scan(&code.ID, &code.Phone, &code.CodeHash, &code.Used, &code.ExpiresAt, &code.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find auth code", zap.Error(err))
		return nil, err
	}
	return &code, nil
}

func (r *Repository) MarkUsed(ctx context.Context, id int64) error {
	query := `
        UPDATE auth_codes
        SET used = TRUE
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't mark auth code used", zap.Error(err))
		return err
	}
	return nil
}

// PurgeExpired deletes codes past their TTL. Run periodically.
func (r *Repository) PurgeExpired(ctx context.Context) (int64, error) {
	query := `
        DELETE FROM auth_codes
        WHERE expires_at <= now() OR used = TRUE
    `
	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		zap.L().Error("can't purge auth codes", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
