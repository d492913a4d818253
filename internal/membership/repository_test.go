package membership

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

var detailColumns = []string{
	"id", "client_id", "package_id", "instructor_id", "status",
	"start_date", "end_date", "payment_date", "is_paid", "description",
	"remain_sessions", "created_at", "updated_at",
	"client.id", "client.fname", "client.lname",
	"package.id", "package.package_name",
	"instructor.id", "instructor.fname", "instructor.lname",
}

func setupMembershipMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewRepository(sqlx.NewDb(conn, "sqlmock"))
	return repo, mock, func() { conn.Close() }
}

func detailRow(id int64, now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(detailColumns).AddRow(
		id, 1, 2, 3, "active",
		now.AddDate(0, -1, 0), now.AddDate(0, 1, 0), now, true, nil,
		8, now, now,
		1, "Sara", "Ahmadi",
		2, "Gold",
		3, "Reza", nil,
	)
}

func TestHasActiveMembership(t *testing.T) {
	repo, mock, closeDB := setupMembershipMock(t)
	defer closeDB()

	now := time.Now()
	mock.ExpectQuery(`SELECT EXISTS\(\s*SELECT 1 FROM memberships\s*WHERE client_id = \$1 AND is_paid = TRUE AND end_date >= \$2`).
		WithArgs(int64(1), now).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.HasActiveMembership(context.Background(), 1, now)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientExists(t *testing.T) {
	repo, mock, closeDB := setupMembershipMock(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM clients WHERE id = \$1\)`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := repo.ClientExists(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock, closeDB := setupMembershipMock(t)
	defer closeDB()

	now := time.Now()
	mock.ExpectQuery(`FROM memberships m .* WHERE m.id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(detailRow(5, now))

	m, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.EqualValues(t, 5, m.ID)
	assert.Equal(t, "Sara", m.Client.FName)
	assert.Equal(t, "Gold", m.Package.PackageName)
	assert.Nil(t, m.Instructor.LName)
	assert.Equal(t, 8, m.RemainSessions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, closeDB := setupMembershipMock(t)
	defer closeDB()

	mock.ExpectQuery(`FROM memberships m`).WithArgs(int64(5)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreate(t *testing.T) {
	repo, mock, closeDB := setupMembershipMock(t)
	defer closeDB()

	now := time.Now()
	p := CreateParams{
		ClientID: 1, PackageID: 2, InstructorID: 3, Status: "active",
		StartDate: now, EndDate: now.AddDate(0, 1, 0), PaymentDate: now, IsPaid: true,
	}

	mock.ExpectQuery(`INSERT INTO memberships`).
		WithArgs(int64(1), int64(2), int64(3), "active", p.StartDate, p.EndDate, p.PaymentDate, true, nil, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectQuery(`FROM memberships m .* WHERE m.id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(detailRow(5, now))

	m, err := repo.Create(context.Background(), p)
	require.NoError(t, err)
	assert.EqualValues(t, 5, m.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ForeignKeyViolation(t *testing.T) {
	repo, mock, closeDB := setupMembershipMock(t)
	defer closeDB()

	mock.ExpectQuery(`INSERT INTO memberships`).WillReturnError(&pq.Error{Code: "23503"})

	_, err := repo.Create(context.Background(), CreateParams{ClientID: 404})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, closeDB := setupMembershipMock(t)
	defer closeDB()

	paid := true
	mock.ExpectExec(`UPDATE memberships SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), 5, UpdateParams{IsPaid: &paid})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock, closeDB := setupMembershipMock(t)
	defer closeDB()

	mock.ExpectExec(`DELETE FROM memberships WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM memberships WHERE id = \$1`).
		WithArgs(int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), 5))
	assert.ErrorIs(t, repo.Delete(context.Background(), 6), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
