package instructor

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Amin-Golden/GymWeb/internal/db"

	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound       = errors.New("instructor not found")
	ErrUnknownPackage = errors.New("package does not exist")
	ErrInUse          = errors.New("instructor is referenced by memberships or sessions")
)

const selectWithPackage = `
	SELECT
		i.id, i.package_id, i.fname, i.lname, i.dob, i.is_male, i.salary, i.email,
		i.title, i.description, i.phone_number, i.image_path, i.created_at, i.updated_at,
		p.id AS "package.id", p.package_name AS "package.package_name",
		(SELECT COUNT(*) FROM memberships m WHERE m.instructor_id = i.id) AS membership_count,
		(SELECT COUNT(*) FROM sessions s WHERE s.instructor_id = i.id) AS session_count
	FROM instructors i
	JOIN packages p ON p.id = i.package_id
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]InstructorWithPackage, error) {
	items := []InstructorWithPackage{}
	if err := r.db.SelectContext(ctx, &items, selectWithPackage+` ORDER BY i.created_at DESC`); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*InstructorWithPackage, error) {
	var i InstructorWithPackage
	err := r.db.GetContext(ctx, &i, selectWithPackage+` WHERE i.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *repository) Create(ctx context.Context, p Params) (*InstructorWithPackage, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, `
		INSERT INTO instructors (package_id, fname, lname, dob, is_male, salary, email, title, description, phone_number, image_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`, p.PackageID, p.FName, p.LName, p.DOB, p.IsMale, p.Salary, p.Email, p.Title, p.Description, p.PhoneNumber, p.ImagePath)
	if db.IsForeignKeyViolation(err) {
		return nil, ErrUnknownPackage
	}
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *repository) Update(ctx context.Context, id int64, p Params) (*InstructorWithPackage, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE instructors SET
			package_id = COALESCE($2, package_id),
			fname = COALESCE($3, fname),
			lname = COALESCE($4, lname),
			dob = COALESCE($5, dob),
			is_male = COALESCE($6, is_male),
			salary = COALESCE($7, salary),
			email = COALESCE($8, email),
			title = COALESCE($9, title),
			description = COALESCE($10, description),
			phone_number = COALESCE($11, phone_number),
			image_path = COALESCE($12, image_path),
			updated_at = NOW()
		WHERE id = $1
	`, id, p.PackageID, p.FName, p.LName, p.DOB, p.IsMale, p.Salary, p.Email, p.Title, p.Description, p.PhoneNumber, p.ImagePath)
	if db.IsForeignKeyViolation(err) {
		return nil, ErrUnknownPackage
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
	result, err := r.db.ExecContext(ctx, `DELETE FROM instructors WHERE id = $1`, id)
	if db.IsForeignKeyViolation(err) {
		return ErrInUse
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
