package membership

import (
	"context"
	"time"
)

type Repository interface {
	List(ctx context.Context) ([]Details, error)
	ListByClient(ctx context.Context, clientID int64) ([]Details, error)
	GetByID(ctx context.Context, id int64) (*Details, error)
	ListSessions(ctx context.Context, membershipID int64) ([]SessionRef, error)
	Create(ctx context.Context, p CreateParams) (*Details, error)
	Update(ctx context.Context, id int64, p UpdateParams) (*Details, error)
	Delete(ctx context.Context, id int64) error

	ClientExists(ctx context.Context, clientID int64) (bool, error)
	HasActiveMembership(ctx context.Context, clientID int64, now time.Time) (bool, error)
}
