package packages

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Amin-Golden/GymWeb/internal/db"

	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound = errors.New("package not found")
	ErrInUse    = errors.New("package is referenced by memberships or instructors")
)

const packageColumns = `id, package_name, image_path, duration, price, days, description, created_at, updated_at`

const selectWithCounts = `
	SELECT
		p.id, p.package_name, p.image_path, p.duration, p.price, p.days, p.description,
		p.created_at, p.updated_at,
		(SELECT COUNT(*) FROM memberships m WHERE m.package_id = p.id) AS membership_count,
		(SELECT COUNT(*) FROM instructors i WHERE i.package_id = p.id) AS instructor_count
	FROM packages p
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]PackageWithCounts, error) {
	items := []PackageWithCounts{}
	if err := r.db.SelectContext(ctx, &items, selectWithCounts+` ORDER BY p.created_at DESC`); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*PackageWithCounts, error) {
	var p PackageWithCounts
	err := r.db.GetContext(ctx, &p, selectWithCounts+` WHERE p.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListInstructors(ctx context.Context, packageID int64) ([]InstructorRef, error) {
	items := []InstructorRef{}
	err := r.db.SelectContext(ctx, &items, `
		SELECT id, fname, lname, title FROM instructors WHERE package_id = $1 ORDER BY fname
	`, packageID)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) Create(ctx context.Context, req CreateRequest) (*Package, error) {
	var p Package
	err := r.db.GetContext(ctx, &p, `
		INSERT INTO packages (package_name, image_path, duration, price, days, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+packageColumns,
		req.PackageName, req.ImagePath, req.Duration, req.Price, req.Days, req.Description,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, id int64, req UpdateRequest) (*Package, error) {
	var p Package
	err := r.db.GetContext(ctx, &p, `
		UPDATE packages SET
			package_name = COALESCE($2, package_name),
			image_path = COALESCE($3, image_path),
			duration = COALESCE($4, duration),
			price = COALESCE($5, price),
			days = COALESCE($6, days),
			description = COALESCE($7, description),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+packageColumns,
		id, req.PackageName, req.ImagePath, req.Duration, req.Price, req.Days, req.Description,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM packages WHERE id = $1`, id)
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
