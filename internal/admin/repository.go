package admin

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Amin-Golden/GymWeb/internal/db"

	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound      = errors.New("admin not found")
	ErrAdminIDExists = errors.New("admin id already exists")
)

const adminColumns = `id, admin_id, fname, lname, dob, is_male, password, phone_number, email, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a NewAdmin, passwordHash string) (*Admin, error) {
	var out Admin
	err := r.db.GetContext(ctx, &out, `
		INSERT INTO admins (admin_id, fname, lname, dob, is_male, password, phone_number, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+adminColumns,
		a.AdminID, a.FName, a.LName, a.DOB, a.IsMale, passwordHash, a.PhoneNumber, a.Email,
	)
	if db.IsUniqueViolation(err, "") {
		return nil, ErrAdminIDExists
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repository) FindByAdminID(ctx context.Context, adminID string) (*Admin, error) {
	return r.findOne(ctx, `SELECT `+adminColumns+` FROM admins WHERE admin_id = $1`, adminID)
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Admin, error) {
	return r.findOne(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id)
}

func (r *repository) findOne(ctx context.Context, query string, arg interface{}) (*Admin, error) {
	var a Admin
	err := r.db.GetContext(ctx, &a, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
