package membership

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Amin-Golden/GymWeb/internal/db"

	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound         = errors.New("membership not found")
	ErrInvalidReference = errors.New("client, package or instructor does not exist")
)

const selectDetails = `
	SELECT
		m.id, m.client_id, m.package_id, m.instructor_id, m.status,
		m.start_date, m.end_date, m.payment_date, m.is_paid, m.description,
		m.remain_sessions, m.created_at, m.updated_at,
		c.id AS "client.id", c.fname AS "client.fname", c.lname AS "client.lname",
		p.id AS "package.id", p.package_name AS "package.package_name",
		i.id AS "instructor.id", i.fname AS "instructor.fname", i.lname AS "instructor.lname"
	FROM memberships m
	JOIN clients c ON c.id = m.client_id
	JOIN packages p ON p.id = m.package_id
	JOIN instructors i ON i.id = m.instructor_id
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Details, error) {
	items := []Details{}
	err := r.db.SelectContext(ctx, &items, selectDetails+` ORDER BY m.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ListByClient(ctx context.Context, clientID int64) ([]Details, error) {
	items := []Details{}
	err := r.db.SelectContext(ctx, &items, selectDetails+` WHERE m.client_id = $1 ORDER BY m.created_at DESC`, clientID)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Details, error) {
	var m Details
	err := r.db.GetContext(ctx, &m, selectDetails+` WHERE m.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) ListSessions(ctx context.Context, membershipID int64) ([]SessionRef, error) {
	sessions := []SessionRef{}
	err := r.db.SelectContext(ctx, &sessions, `
		SELECT id, instructor_id, destination_date, is_attended, description
		FROM sessions
		WHERE membership_id = $1
		ORDER BY destination_date DESC
	`, membershipID)
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *repository) Create(ctx context.Context, p CreateParams) (*Details, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, `
		INSERT INTO memberships (client_id, package_id, instructor_id, status, start_date, end_date, payment_date, is_paid, description, remain_sessions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, p.ClientID, p.PackageID, p.InstructorID, p.Status, p.StartDate, p.EndDate, p.PaymentDate, p.IsPaid, p.Description, p.RemainSessions)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, ErrInvalidReference
		}
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *repository) Update(ctx context.Context, id int64, p UpdateParams) (*Details, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE memberships SET
			client_id = COALESCE($2, client_id),
			package_id = COALESCE($3, package_id),
			instructor_id = COALESCE($4, instructor_id),
			status = COALESCE($5, status),
			start_date = COALESCE($6, start_date),
			end_date = COALESCE($7, end_date),
			payment_date = COALESCE($8, payment_date),
			is_paid = COALESCE($9, is_paid),
			description = COALESCE($10, description),
			remain_sessions = COALESCE($11, remain_sessions),
			updated_at = NOW()
		WHERE id = $1
	`, id, p.ClientID, p.PackageID, p.InstructorID, p.Status, p.StartDate, p.EndDate, p.PaymentDate, p.IsPaid, p.Description, p.RemainSessions)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, ErrInvalidReference
		}
		return nil, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM memberships WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) ClientExists(ctx context.Context, clientID int64) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM clients WHERE id = $1)`, clientID)
}

func (r *repository) HasActiveMembership(ctx context.Context, clientID int64, now time.Time) (bool, error) {
	return db.Exists(ctx, r.db, `
		SELECT EXISTS(
			SELECT 1 FROM memberships
			WHERE client_id = $1 AND is_paid = TRUE AND end_date >= $2
		)
	`, clientID, now)
}
