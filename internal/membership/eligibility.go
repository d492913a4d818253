package membership

import (
	"context"
	"errors"
	"time"
)

var ErrClientNotFound = errors.New("client not found")

// Eligibility decides whether a client may enter the gym. Nothing is cached:
// every call reads the current membership rows.
type Eligibility interface {
	IsEligible(ctx context.Context, clientID int64, now time.Time) (bool, error)
}

type eligibility struct {
	repo Repository
}

func NewEligibility(repo Repository) Eligibility {
	return &eligibility{repo: repo}
}

// IsEligible is true iff the client has a paid membership whose end date is
// not before now. Fails with ErrClientNotFound for unknown clients.
func (e *eligibility) IsEligible(ctx context.Context, clientID int64, now time.Time) (bool, error) {
	exists, err := e.repo.ClientExists(ctx, clientID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, ErrClientNotFound
	}
	return e.repo.HasActiveMembership(ctx, clientID, now)
}
