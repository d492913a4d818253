package payment

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paymentColumns = []string{
	"id", "client_id", "payment_type", "description", "created_at",
	"client.id", "client.fname", "client.lname", "client.phone_number",
}

func setupPaymentMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewRepository(sqlx.NewDb(conn, "sqlmock")), mock, func() { conn.Close() }
}

func TestListPayments(t *testing.T) {
	repo, mock, closeDB := setupPaymentMock(t)
	defer closeDB()

	now := time.Now()
	mock.ExpectQuery(`FROM payments p\s+JOIN clients c ON c.id = p.client_id\s+ORDER BY p.created_at DESC`).
		WillReturnRows(sqlmock.NewRows(paymentColumns).
			AddRow(2, 1, "card", nil, now, 1, "Sara", nil, "0912").
			AddRow(1, 1, "cash", "first month", now.Add(-time.Hour), 1, "Sara", nil, "0912"))

	payments, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "card", payments[0].PaymentType)
	assert.Equal(t, "first month", *payments[1].Description)
	assert.Equal(t, "Sara", payments[1].Client.FName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePayment_UnknownClient(t *testing.T) {
	repo, mock, closeDB := setupPaymentMock(t)
	defer closeDB()

	mock.ExpectQuery(`INSERT INTO payments`).
		WithArgs(int64(9), "cash", nil).
		WillReturnError(&pq.Error{Code: "23503"})

	_, err := repo.Create(context.Background(), 9, "cash", nil)
	assert.ErrorIs(t, err, ErrUnknownClient)
}

func TestGetPayment_NotFound(t *testing.T) {
	repo, mock, closeDB := setupPaymentMock(t)
	defer closeDB()

	mock.ExpectQuery(`WHERE p.id = \$1`).WithArgs(int64(3)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePayment(t *testing.T) {
	repo, mock, closeDB := setupPaymentMock(t)
	defer closeDB()

	now := time.Now()
	kind := "transfer"
	mock.ExpectExec(`UPDATE payments SET`).
		WithArgs(int64(3), nil, &kind, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`WHERE p.id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(paymentColumns).AddRow(3, 1, "transfer", nil, now, 1, "Sara", nil, "0912"))

	p, err := repo.Update(context.Background(), 3, nil, &kind, nil)
	require.NoError(t, err)
	assert.Equal(t, "transfer", p.PaymentType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePayment_NotFound(t *testing.T) {
	repo, mock, closeDB := setupPaymentMock(t)
	defer closeDB()

	mock.ExpectExec(`DELETE FROM payments WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 3), ErrNotFound)
}
