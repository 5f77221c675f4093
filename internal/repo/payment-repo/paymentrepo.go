package paymentrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gardenus/matchledger/internal/domain"
	"github.com/gardenus/matchledger/internal/pg"
	"go.uber.org/zap"
)

// ErrDuplicate reports a payment id that was already recorded.
var ErrDuplicate = errors.New("payment already recorded")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `
        SELECT id, uid, product_id, flower_amount, amount_krw, gateway_status, created_at
        FROM payments
        WHERE id = $1
    `
	var p domain.Payment
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.UID, &p.ProductID, &p.FlowerAmount, &p.AmountKRW, &p.GatewayStatus, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.Payment) error {
	query := `
        INSERT INTO payments (id, uid, product_id, flower_amount, amount_krw, gateway_status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, now())
    `
	_, err := r.db.Exec(ctx, query, p.ID, p.UID, p.ProductID, p.FlowerAmount, p.AmountKRW, p.GatewayStatus)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		zap.L().Error("can't record payment", zap.Error(err))
		return err
	}
	return nil
}
