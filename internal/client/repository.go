package client

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Amin-Golden/GymWeb/internal/db"

	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound  = errors.New("client not found")
	ErrHasVisits = errors.New("client has recorded gym visits")
)

const clientColumns = `
	id, fname, lname, dob, is_male, email, phone_number, social_number,
	description, locker, weight, height, created_at, updated_at
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Client, error) {
	clients := []Client{}
	err := r.db.SelectContext(ctx, &clients, `SELECT `+clientColumns+` FROM clients ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Client, error) {
	var c Client
	err := r.db.GetContext(ctx, &c, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Create(ctx context.Context, p Params) (*Client, error) {
	var c Client
	err := r.db.GetContext(ctx, &c, `
		INSERT INTO clients (fname, lname, dob, is_male, email, phone_number, social_number, description, locker, weight, height)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+clientColumns,
		p.FName, p.LName, p.DOB, p.IsMale, p.Email, p.PhoneNumber, p.SocialNumber, p.Description, p.Locker, p.Weight, p.Height,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, id int64, p Params) (*Client, error) {
	var c Client
	err := r.db.GetContext(ctx, &c, `
		UPDATE clients SET
			fname = COALESCE($2, fname),
			lname = COALESCE($3, lname),
			dob = COALESCE($4, dob),
			is_male = COALESCE($5, is_male),
			email = COALESCE($6, email),
			phone_number = COALESCE($7, phone_number),
			social_number = COALESCE($8, social_number),
			description = COALESCE($9, description),
			locker = COALESCE($10, locker),
			weight = COALESCE($11, weight),
			height = COALESCE($12, height),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+clientColumns,
		id, p.FName, p.LName, p.DOB, p.IsMale, p.Email, p.PhoneNumber, p.SocialNumber, p.Description, p.Locker, p.Weight, p.Height,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete removes the client with its memberships and payments. Clients with
// visit history are kept.
func (r *repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if db.IsForeignKeyViolation(err) {
		return ErrHasVisits
	}
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
