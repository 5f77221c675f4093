package authcoderepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	expiresAt := now.Add(5 * time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO auth_codes (phone, code_hash, expires_at, created_at) VALUES ($1, $2, $3, now()) RETURNING id, created_at")).
		WithArgs("+821012345678", "hashed", expiresAt).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))

	code, err := repo.Create(context.Background(), "+821012345678", "hashed", expiresAt)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, code.ID)
	assert.Equal(t, "+821012345678", code.Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetLatestActive(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	selectQuery := regexp.QuoteMeta("SELECT id, phone, code_hash, used, expires_at, created_at FROM auth_codes WHERE phone = $1 AND used = FALSE AND expires_at > now() ORDER BY created_at DESC LIMIT 1")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Active code exists",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "phone", "code_hash", "used", "expires_at", "created_at"}).
					AddRow(int64(1), "+821012345678", "hashed", false, now.Add(5*time.Minute), now)
				mock.ExpectQuery(selectQuery).WithArgs("+821012345678").WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "No active code",
			mockSetup: func() {
				mock.ExpectQuery(selectQuery).WithArgs("+821012345678").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(selectQuery).WithArgs("+821012345678").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			code, err := repo.GetLatestActive(context.Background(), "+821012345678")
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.found, code != nil)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_MarkUsed(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE auth_codes SET used = TRUE WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.MarkUsed(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_PurgeExpired(t *testing.T) {
	repo, mock := NewMock(t)

	purgeQuery := regexp.QuoteMeta("DELETE FROM auth_codes WHERE expires_at <= now() OR used = TRUE")

	mock.ExpectExec(purgeQuery).WillReturnResult(pgxmock.NewResult("DELETE", 3))

	n, err := repo.PurgeExpired(context.Background())
	assert.NoError(t, err)
	assert.EqualValues(t, 3, n)

	mock.ExpectExec(purgeQuery).WillReturnError(errors.New("database error"))

	_, err = repo.PurgeExpired(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
