package matchrequestrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gardenus/matchledger/internal/domain"
	"github.com/gardenus/matchledger/internal/pg"
	"go.uber.org/zap"
)

// ErrDuplicate reports an insert that collided with an existing request
// for the same directed pair.
var ErrDuplicate = errors.New("match request already exists")

const columns = "id, from_uid, to_uid, status, flower_cost, refund_eligible, created_at, updated_at"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanRequest(row pgx.Row) (*domain.MatchRequest, error) {
	var req domain.MatchRequest
	err := row.Scan(&req.ID, &req.FromUID, &req.ToUID, &req.Status, &req.FlowerCost, &req.RefundEligible, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.MatchRequest, error) {
	query := `
        SELECT ` + columns + `
        FROM match_requests
        WHERE id = $1
    `
	req, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find match request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

// GetByIDForUpdate locks the request row for the rest of the transaction.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*domain.MatchRequest, error) {
	query := `
        SELECT ` + columns + `
        FROM match_requests
        WHERE id = $1
        FOR UPDATE
    `
	req, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock match request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

// GetPairForUpdate locks both directions of a pair in one query. Rows are
// locked in id order, so two transactions racing on opposite directions
// of the same pair always queue behind each other instead of deadlocking.
func (r *Repository) GetPairForUpdate(ctx context.Context, forwardID, reverseID string) (forward, reverse *domain.MatchRequest, err error) {
	query := `
        SELECT ` + columns + `
        FROM match_requests
        WHERE id = $1 OR id = $2
        ORDER BY id
        FOR UPDATE
    `
	rows, err := r.db.Query(ctx, query, forwardID, reverseID)
	if err != nil {
		zap.L().Error("can't lock match request pair", zap.Error(err))
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("can't scan match request row", zap.Error(err))
			return nil, nil, err
		}
		switch req.ID {
		case forwardID:
			forward = req
		case reverseID:
			reverse = req
		}
	}
	return forward, reverse, rows.Err()
}

func (r *Repository) Create(ctx context.Context, req *domain.MatchRequest) error {
	query := `
        INSERT INTO match_requests (id, from_uid, to_uid, status, flower_cost, refund_eligible, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, now(), now())
    `
	_, err := r.db.Exec(ctx, query, req.ID, req.FromUID, req.ToUID, req.Status, req.FlowerCost, req.RefundEligible)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		zap.L().Error("can't create match request", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetStatus(ctx context.Context, id string, status domain.MatchRequestStatus) error {
	query := `
        UPDATE match_requests
        SET status = $2, updated_at = now()
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		zap.L().Error("can't update match request status", zap.Error(err))
		return err
	}
	return nil
}

// SetStatusIfPending transitions a request out of PENDING. Returns false
// when the request is absent or already in a terminal state.
func (r *Repository) SetStatusIfPending(ctx context.Context, id string, status domain.MatchRequestStatus) (bool, error) {
	query := `
        UPDATE match_requests
        SET status = $2, updated_at = now()
        WHERE id = $1 AND status = $3
    `
	tag, err := r.db.Exec(ctx, query, id, status, domain.StatusPending)
	if err != nil {
		zap.L().Error("can't update match request status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `
        DELETE FROM match_requests
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete match request", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) queryRequests(ctx context.Context, query string, args ...interface{}) ([]domain.MatchRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't query match requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.MatchRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("can't scan match request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func (r *Repository) FindSentByUser(ctx context.Context, uid string, limit int) ([]domain.MatchRequest, error) {
	query := `
        SELECT ` + columns + `
        FROM match_requests
        WHERE from_uid = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	return r.queryRequests(ctx, query, uid, limit)
}

func (r *Repository) FindReceivedPending(ctx context.Context, uid string, limit int) ([]domain.MatchRequest, error) {
	query := `
        SELECT ` + columns + `
        FROM match_requests
        WHERE to_uid = $1 AND status = $2
        ORDER BY created_at DESC
        LIMIT $3
    `
	return r.queryRequests(ctx, query, uid, domain.StatusPending, limit)
}

func (r *Repository) FindAcceptedFrom(ctx context.Context, uid string, limit int) ([]domain.MatchRequest, error) {
	query := `
        SELECT ` + columns + `
        FROM match_requests
        WHERE from_uid = $1 AND status = $2
        ORDER BY created_at DESC
        LIMIT $3
    `
	return r.queryRequests(ctx, query, uid, domain.StatusAccepted, limit)
}

func (r *Repository) FindAcceptedTo(ctx context.Context, uid string, limit int) ([]domain.MatchRequest, error) {
	query := `
        SELECT ` + columns + `
        FROM match_requests
        WHERE to_uid = $1 AND status = $2
        ORDER BY created_at DESC
        LIMIT $3
    `
	return r.queryRequests(ctx, query, uid, domain.StatusAccepted, limit)
}

func (r *Repository) FindByCreatedRange(ctx context.Context, start, end time.Time, asc bool, limit int) ([]domain.MatchRequest, error) {
	order := "DESC"
	if asc {
		order = "ASC"
	}
	query := `
        SELECT ` + columns + `
        FROM match_requests
        WHERE created_at >= $1 AND created_at < $2
        ORDER BY created_at ` + order + `
        LIMIT $3
    `
	return r.queryRequests(ctx, query, start, end, limit)
}
