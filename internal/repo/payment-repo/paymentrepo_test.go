package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/gardenus/matchledger/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	selectQuery := regexp.QuoteMeta("SELECT id, uid, product_id, flower_amount, amount_krw, gateway_status, created_at FROM payments WHERE id = $1")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Payment exists",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "uid", "product_id", "flower_amount", "amount_krw", "gateway_status", "created_at"}).
					AddRow("pay_1", "alice", "flower_800", int64(800), int64(34900), "PAID", now)
				mock.ExpectQuery(selectQuery).WithArgs("pay_1").WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Payment does not exist",
			mockSetup: func() {
				mock.ExpectQuery(selectQuery).WithArgs("pay_1").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(selectQuery).WithArgs("pay_1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			payment, err := repo.GetByID(context.Background(), "pay_1")
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.found, payment != nil)
			if payment != nil {
				assert.Equal(t, "pay_1", payment.ID)
				assert.EqualValues(t, 800, payment.FlowerAmount)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	payment := &domain.Payment{
		ID:            "pay_1",
		UID:           "alice",
		ProductID:     "flower_800",
		FlowerAmount:  800,
		AmountKRW:     34900,
		GatewayStatus: "PAID",
	}

	insertQuery := regexp.QuoteMeta("INSERT INTO payments (id, uid, product_id, flower_amount, amount_krw, gateway_status, created_at) VALUES ($1, $2, $3, $4, $5, $6, now())")

	tests := []struct {
		name      string
		mockSetup func()
		expected  error
	}{
		{
			name: "Successful insert",
			mockSetup: func() {
				mock.ExpectExec(insertQuery).
					WithArgs("pay_1", "alice", "flower_800", int64(800), int64(34900), "PAID").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Replayed payment id maps to ErrDuplicate",
			mockSetup: func() {
				mock.ExpectExec(insertQuery).
					WithArgs("pay_1", "alice", "flower_800", int64(800), int64(34900), "PAID").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expected: ErrDuplicate,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(insertQuery).
					WithArgs("pay_1", "alice", "flower_800", int64(800), int64(34900), "PAID").
					WillReturnError(errors.New("database error"))
			},
			expected: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Create(context.Background(), payment)
			if tt.expected != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expected.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
