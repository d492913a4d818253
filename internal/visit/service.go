package visit

import (
	"context"
	"errors"
	"time"

	"github.com/Amin-Golden/GymWeb/internal/events"
	"github.com/Amin-Golden/GymWeb/internal/logger"
	"github.com/Amin-Golden/GymWeb/internal/membership"
	"github.com/Amin-Golden/GymWeb/internal/metrics"
)

var (
	ErrNoActiveMembership = errors.New("client does not have an active membership")
	ErrNotInside          = errors.New("client is not in the gym")
)

const publishTimeout = 2 * time.Second

// CacheInvalidator drops derived views that depend on who is inside.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Service is the admission gate. A client is either OUTSIDE (no open visit)
// or INSIDE (exactly one open visit).
type Service interface {
	Enter(ctx context.Context, clientID int64, lockerNumber *int) (*Visit, error)
	Exit(ctx context.Context, visitID int64) (*Visit, error)
	ExitClient(ctx context.Context, clientID int64) (*Visit, error)
	Get(ctx context.Context, visitID int64) (*VisitWithClient, error)
	List(ctx context.Context, activeOnly bool) ([]VisitWithClient, error)
}

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func WithPublisher(p events.Publisher) Option {
	return func(s *service) { s.publisher = p }
}

func WithCacheInvalidator(c CacheInvalidator) Option {
	return func(s *service) { s.cache = c }
}

type service struct {
	ledger      Repository
	eligibility membership.Eligibility
	publisher   events.Publisher
	cache       CacheInvalidator
	now         func() time.Time
}

func NewService(ledger Repository, eligibility membership.Eligibility, opts ...Option) Service {
	s := &service{
		ledger:      ledger,
		eligibility: eligibility,
		publisher:   events.Noop{},
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Enter(ctx context.Context, clientID int64, lockerNumber *int) (*Visit, error) {
	now := s.now()

	eligible, err := s.eligibility.IsEligible(ctx, clientID, now)
	if err != nil {
		if errors.Is(err, membership.ErrClientNotFound) {
			metrics.RecordAdmission(metrics.OutcomeClientNotFound)
		}
		return nil, err
	}
	if !eligible {
		metrics.RecordAdmission(metrics.OutcomeNoMembership)
		return nil, ErrNoActiveMembership
	}

	v, err := s.ledger.OpenVisit(ctx, clientID, now, lockerNumber)
	if err != nil {
		if errors.Is(err, ErrAlreadyPresent) {
			metrics.RecordAdmission(metrics.OutcomeAlreadyPresent)
		}
		return nil, err
	}

	metrics.RecordAdmission(metrics.OutcomeAdmitted)
	s.announce(ctx, events.RoutingKeyEntered, v, now)
	return v, nil
}

func (s *service) Exit(ctx context.Context, visitID int64) (*Visit, error) {
	now := s.now()

	v, closed, err := s.ledger.CloseVisit(ctx, visitID, now)
	if err != nil {
		return nil, err
	}
	if closed {
		metrics.RecordExit()
		s.announce(ctx, events.RoutingKeyExited, v, now)
	}
	return v, nil
}

func (s *service) ExitClient(ctx context.Context, clientID int64) (*Visit, error) {
	open, err := s.ledger.FindOpenVisit(ctx, clientID)
	if errors.Is(err, ErrVisitNotFound) {
		return nil, ErrNotInside
	}
	if err != nil {
		return nil, err
	}
	return s.Exit(ctx, open.ID.Int64())
}

func (s *service) Get(ctx context.Context, visitID int64) (*VisitWithClient, error) {
	return s.ledger.GetVisit(ctx, visitID)
}

func (s *service) List(ctx context.Context, activeOnly bool) ([]VisitWithClient, error) {
	if activeOnly {
		return s.ledger.ListOpenVisits(ctx)
	}
	return s.ledger.ListAllVisits(ctx)
}

// announce runs the side effects of a presence transition. Failures are
// logged; the transition itself is already committed.
func (s *service) announce(ctx context.Context, routingKey string, v *Visit, now time.Time) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			logger.WithError(err).Warn("dashboard cache invalidation failed")
		}
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err := s.publisher.PublishJSON(pubCtx, routingKey, events.PresenceEvent{
		Type:         routingKey,
		VisitID:      v.ID.String(),
		ClientID:     v.ClientID.String(),
		EntranceTime: v.EntranceTime,
		ExitTime:     v.ExitTime,
		LockerNumber: v.LockerNumber,
		OccurredAt:   now,
	})
	metrics.RecordEventPublished(routingKey, err)
	if err != nil {
		logger.WithError(err).Warn("presence event not published",
			"routing_key", routingKey,
			"visit_id", v.ID.String(),
		)
	}
}
