package visit

import (
	"context"
	"time"
)

// Repository is the presence ledger. It guarantees at most one open visit
// per client, even under concurrent writers.
type Repository interface {
	// OpenVisit fails with ErrAlreadyPresent when the client already has an
	// open visit.
	OpenVisit(ctx context.Context, clientID int64, now time.Time, lockerNumber *int) (*Visit, error)
	// CloseVisit stamps the exit time. closed is false when the visit had
	// already been closed, in which case the first exit time is kept.
	CloseVisit(ctx context.Context, visitID int64, now time.Time) (v *Visit, closed bool, err error)
	GetVisit(ctx context.Context, visitID int64) (*VisitWithClient, error)
	FindOpenVisit(ctx context.Context, clientID int64) (*Visit, error)
	ListOpenVisits(ctx context.Context) ([]VisitWithClient, error)
	ListAllVisits(ctx context.Context) ([]VisitWithClient, error)
	ListClientVisits(ctx context.Context, clientID int64, limit int) ([]Visit, error)
}
