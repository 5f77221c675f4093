package userrepo

import (
	"context"
	"errors"

	"github.com/gardenus/matchledger/internal/domain"
	"github.com/gardenus/matchledger/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ErrNoUser reports a balance change aimed at a uid without a users row.
var ErrNoUser = errors.New("user not found")

const columns = "uid, name, gender, profile_visible, flower, created_at, updated_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.UID, &user.Name, &user.Gender, &user.ProfileVisible, &user.Flower, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetByUID(ctx context.Context, uid string) (*domain.User, error) {
	query := `
        SELECT ` + columns + `
        FROM users
        WHERE uid = $1
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, uid))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Upsert creates the user row on first sign-in and returns the existing
// row otherwise.
func (r *Repository) Upsert(ctx context.Context, uid string) (*domain.User, error) {
	query := `
        INSERT INTO users (uid)
        VALUES ($1)
        ON CONFLICT (uid) DO UPDATE SET updated_at = now()
        RETURNING ` + columns + `
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, uid))
	if err != nil {
		zap.L().Error("can't upsert user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, uid, name string, gender, visible bool) (*domain.User, error) {
	query := `
        UPDATE users
        SET name = $2, gender = $3, profile_visible = $4, updated_at = now()
        WHERE uid = $1
        RETURNING ` + columns + `
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, uid, name, gender, visible))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update profile", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// GetFlowerForUpdate locks the user row and returns the current balance.
func (r *Repository) GetFlowerForUpdate(ctx context.Context, uid string) (int64, error) {
	query := `
        SELECT flower
        FROM users
        WHERE uid = $1
        FOR UPDATE
    `
	var flower int64
	err := r.db.QueryRow(ctx, query, uid).Scan(&flower)
	if err != nil {
		zap.L().Error("can't lock user balance", zap.Error(err))
		return 0, err
	}
	return flower, nil
}

// AddFlower credits (or debits, with a negative delta) the user's flower
// balance. The CHECK constraint rejects any debit below zero.
func (r *Repository) AddFlower(ctx context.Context, uid string, delta int64) error {
	query := `
        UPDATE users
        SET flower = flower + $2, updated_at = now()
        WHERE uid = $1
    `
	tag, err := r.db.Exec(ctx, query, uid, delta)
	if err != nil {
		zap.L().Error("can't change user balance", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		zap.L().Error("balance change for unknown user", zap.String("uid", uid))
		return ErrNoUser
	}
	return nil
}

// FindCandidates returns visible profiles of the wanted gender.
func (r *Repository) FindCandidates(ctx context.Context, gender bool, limit int) ([]domain.User, error) {
	query := `
        SELECT ` + columns + `
        FROM users
        WHERE profile_visible = TRUE AND gender = $1
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, gender, limit)
	if err != nil {
		zap.L().Error("can't query candidates", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}
