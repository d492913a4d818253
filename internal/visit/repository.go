package visit

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Amin-Golden/GymWeb/internal/db"
	"github.com/Amin-Golden/GymWeb/internal/membership"

	"github.com/jmoiron/sqlx"
)

// OpenVisitConstraint is the partial unique index that keeps a client from
// holding two open visits.
const OpenVisitConstraint = "gym_sessions_one_open_per_client"

var (
	ErrVisitNotFound  = errors.New("visit not found")
	ErrAlreadyPresent = errors.New("client is already in the gym")
	ErrClientNotFound = membership.ErrClientNotFound
)

const visitColumns = `id, client_id, entrance_time, exit_time, locker_number, created_at`

const selectWithClient = `
	SELECT
		v.id, v.client_id, v.entrance_time, v.exit_time, v.locker_number, v.created_at,
		c.id AS "client.id", c.fname AS "client.fname", c.lname AS "client.lname",
		c.phone_number AS "client.phone_number"
	FROM gym_sessions v
	JOIN clients c ON c.id = v.client_id
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) OpenVisit(ctx context.Context, clientID int64, now time.Time, lockerNumber *int) (*Visit, error) {
	var v Visit
	err := r.db.GetContext(ctx, &v, `
		INSERT INTO gym_sessions (client_id, entrance_time, locker_number)
		VALUES ($1, $2, $3)
		RETURNING `+visitColumns,
		clientID, now, lockerNumber,
	)
	switch {
	case db.IsUniqueViolation(err, OpenVisitConstraint):
		return nil, ErrAlreadyPresent
	case db.IsForeignKeyViolation(err):
		return nil, ErrClientNotFound
	case err != nil:
		return nil, err
	}
	return &v, nil
}

// CloseVisit stamps the exit time of an open visit. closed reports whether
// this call did the stamping; an already closed visit is returned unchanged.
func (r *repository) CloseVisit(ctx context.Context, visitID int64, now time.Time) (*Visit, bool, error) {
	var v Visit
	err := r.db.GetContext(ctx, &v, `
		UPDATE gym_sessions
		SET exit_time = $2
		WHERE id = $1 AND exit_time IS NULL
		RETURNING `+visitColumns,
		visitID, now,
	)
	if err == nil {
		return &v, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, err
	}

	err = r.db.GetContext(ctx, &v, `SELECT `+visitColumns+` FROM gym_sessions WHERE id = $1`, visitID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, ErrVisitNotFound
	}
	if err != nil {
		return nil, false, err
	}
	return &v, false, nil
}

func (r *repository) GetVisit(ctx context.Context, visitID int64) (*VisitWithClient, error) {
	var v VisitWithClient
	err := r.db.GetContext(ctx, &v, selectWithClient+` WHERE v.id = $1`, visitID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVisitNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) FindOpenVisit(ctx context.Context, clientID int64) (*Visit, error) {
	var v Visit
	err := r.db.GetContext(ctx, &v, `
		SELECT `+visitColumns+`
		FROM gym_sessions
		WHERE client_id = $1 AND exit_time IS NULL
	`, clientID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVisitNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) ListOpenVisits(ctx context.Context) ([]VisitWithClient, error) {
	visits := []VisitWithClient{}
	err := r.db.SelectContext(ctx, &visits, selectWithClient+`
		WHERE v.exit_time IS NULL
		ORDER BY v.entrance_time DESC, v.id DESC
	`)
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *repository) ListAllVisits(ctx context.Context) ([]VisitWithClient, error) {
	visits := []VisitWithClient{}
	err := r.db.SelectContext(ctx, &visits, selectWithClient+` ORDER BY v.entrance_time DESC, v.id DESC`)
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *repository) ListClientVisits(ctx context.Context, clientID int64, limit int) ([]Visit, error) {
	visits := []Visit{}
	err := r.db.SelectContext(ctx, &visits, `
		SELECT `+visitColumns+`
		FROM gym_sessions
		WHERE client_id = $1
		ORDER BY entrance_time DESC, id DESC
		LIMIT $2
	`, clientID, limit)
	if err != nil {
		return nil, err
	}
	return visits, nil
}
