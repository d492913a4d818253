package training

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Amin-Golden/GymWeb/internal/db"

	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound         = errors.New("session not found")
	ErrInvalidReference = errors.New("instructor or membership does not exist")
)

const selectDetails = `
	SELECT
		s.id, s.instructor_id, s.membership_id, s.destination_date, s.is_attended,
		s.description, s.created_at,
		i.id AS "instructor.id", i.fname AS "instructor.fname", i.lname AS "instructor.lname",
		c.id AS "client.id", c.fname AS "client.fname", c.lname AS "client.lname"
	FROM sessions s
	JOIN instructors i ON i.id = s.instructor_id
	JOIN memberships m ON m.id = s.membership_id
	JOIN clients c ON c.id = m.client_id
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]SessionDetails, error) {
	items := []SessionDetails{}
	if err := r.db.SelectContext(ctx, &items, selectDetails+` ORDER BY s.destination_date DESC`); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*SessionDetails, error) {
	var s SessionDetails
	err := r.db.GetContext(ctx, &s, selectDetails+` WHERE s.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Create(ctx context.Context, p Params) (*SessionDetails, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, `
		INSERT INTO sessions (instructor_id, membership_id, destination_date, is_attended, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, p.InstructorID, p.MembershipID, p.DestinationDate, p.IsAttended, p.Description)
	if db.IsForeignKeyViolation(err) {
		return nil, ErrInvalidReference
	}
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *repository) Update(ctx context.Context, id int64, p Params) (*SessionDetails, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE sessions SET
			instructor_id = COALESCE($2, instructor_id),
			membership_id = COALESCE($3, membership_id),
			destination_date = COALESCE($4, destination_date),
			is_attended = COALESCE($5, is_attended),
			description = COALESCE($6, description)
		WHERE id = $1
	`, id, p.InstructorID, p.MembershipID, p.DestinationDate, p.IsAttended, p.Description)
	if db.IsForeignKeyViolation(err) {
		return nil, ErrInvalidReference
	}
	if err != nil {
		return nil, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
