package admin

import "context"

type Repository interface {
	Create(ctx context.Context, a NewAdmin, passwordHash string) (*Admin, error)
	FindByAdminID(ctx context.Context, adminID string) (*Admin, error)
	FindByID(ctx context.Context, id int64) (*Admin, error)
}
