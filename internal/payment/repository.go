package payment

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Amin-Golden/GymWeb/internal/db"

	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound      = errors.New("payment not found")
	ErrUnknownClient = errors.New("client does not exist")
)

const selectWithClient = `
	SELECT
		p.id, p.client_id, p.payment_type, p.description, p.created_at,
		c.id AS "client.id", c.fname AS "client.fname", c.lname AS "client.lname",
		c.phone_number AS "client.phone_number"
	FROM payments p
	JOIN clients c ON c.id = p.client_id
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]PaymentWithClient, error) {
	payments := []PaymentWithClient{}
	if err := r.db.SelectContext(ctx, &payments, selectWithClient+` ORDER BY p.created_at DESC`); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *repository) ListByClient(ctx context.Context, clientID int64) ([]Payment, error) {
	payments := []Payment{}
	err := r.db.SelectContext(ctx, &payments, `
		SELECT id, client_id, payment_type, description, created_at
		FROM payments
		WHERE client_id = $1
		ORDER BY created_at DESC
	`, clientID)
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*PaymentWithClient, error) {
	var p PaymentWithClient
	err := r.db.GetContext(ctx, &p, selectWithClient+` WHERE p.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, clientID int64, paymentType string, description *string) (*PaymentWithClient, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, `
		INSERT INTO payments (client_id, payment_type, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`, clientID, paymentType, description)
	if db.IsForeignKeyViolation(err) {
		return nil, ErrUnknownClient
	}
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *repository) Update(ctx context.Context, id int64, clientID *int64, paymentType, description *string) (*PaymentWithClient, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE payments SET
			client_id = COALESCE($2, client_id),
			payment_type = COALESCE($3, payment_type),
			description = COALESCE($4, description)
		WHERE id = $1
	`, id, clientID, paymentType, description)
	if db.IsForeignKeyViolation(err) {
		return nil, ErrUnknownClient
	}
	if err != nil {
		return nil, err
	}
	if n, err := result.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
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
