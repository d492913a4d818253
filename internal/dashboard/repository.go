package dashboard

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Stats(ctx context.Context, now, startOfDay time.Time) (*Stats, error)
	RecentClients(ctx context.Context, limit int) ([]RecentClient, error)
	RecentMemberships(ctx context.Context, limit int) ([]RecentMembership, error)
	RecentPayments(ctx context.Context, limit int) ([]RecentPayment, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Stats(ctx context.Context, now, startOfDay time.Time) (*Stats, error) {
	var s Stats
	err := r.db.GetContext(ctx, &s, `
		SELECT
			(SELECT COUNT(*) FROM clients) AS total_clients,
			(SELECT COUNT(*) FROM packages) AS total_packages,
			(SELECT COUNT(*) FROM instructors) AS total_instructors,
			(SELECT COUNT(*) FROM memberships WHERE is_paid AND end_date >= $1) AS active_memberships,
			(SELECT COUNT(*) FROM gym_sessions WHERE exit_time IS NULL) AS active_gym_sessions,
			(SELECT COUNT(*) FROM gym_sessions WHERE entrance_time >= $2) AS today_gym_sessions,
			(SELECT COUNT(*) FROM payments) AS total_payments,
			(SELECT COUNT(*) FROM sessions WHERE destination_date >= $1 AND NOT is_attended) AS active_sessions
	`, now, startOfDay)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) RecentClients(ctx context.Context, limit int) ([]RecentClient, error) {
	items := []RecentClient{}
	err := r.db.SelectContext(ctx, &items, `
		SELECT id, fname, lname, phone_number, created_at
		FROM clients
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) RecentMemberships(ctx context.Context, limit int) ([]RecentMembership, error) {
	items := []RecentMembership{}
	err := r.db.SelectContext(ctx, &items, `
		SELECT
			m.id, m.status, m.is_paid, m.end_date, m.created_at,
			c.id AS "client.id", c.fname AS "client.fname", c.lname AS "client.lname",
			p.id AS "package.id", p.package_name AS "package.package_name"
		FROM memberships m
		JOIN clients c ON c.id = m.client_id
		JOIN packages p ON p.id = m.package_id
		ORDER BY m.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) RecentPayments(ctx context.Context, limit int) ([]RecentPayment, error) {
	items := []RecentPayment{}
	err := r.db.SelectContext(ctx, &items, `
		SELECT
			p.id, p.payment_type, p.created_at,
			c.id AS "client.id", c.fname AS "client.fname", c.lname AS "client.lname"
		FROM payments p
		JOIN clients c ON c.id = p.client_id
		ORDER BY p.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return items, nil
}
