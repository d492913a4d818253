package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/Amin-Golden/GymWeb/internal/logger"
	"github.com/Amin-Golden/GymWeb/internal/metrics"
	"github.com/Amin-Golden/GymWeb/internal/visit"
)

const (
	recentLimit      = 5
	recentVisitLimit = 10
)

type Service interface {
	Stats(ctx context.Context) (*Stats, error)
	RecentActivity(ctx context.Context) (*RecentActivity, error)
}

type service struct {
	repo   Repository
	visits visit.Repository
	cache  *Cache
	now    func() time.Time
}

func NewService(repo Repository, visits visit.Repository, cache *Cache) Service {
	return &service{repo: repo, visits: visits, cache: cache, now: time.Now}
}

// Stats serves from the cache when possible. Cache failures degrade to a
// direct read.
func (s *service) Stats(ctx context.Context) (*Stats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			logger.WithError(err).Warn("dashboard cache read failed")
		}
		metrics.RecordDashboardCache(cached != nil)
		if cached != nil {
			return cached, nil
		}
	}

	now := s.now()
	y, m, d := now.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	stats, err := s.repo.Stats(ctx, now, startOfDay)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, stats); err != nil {
		logger.WithError(err).Warn("dashboard cache write failed")
	}
	return stats, nil
}

func (s *service) RecentActivity(ctx context.Context) (*RecentActivity, error) {
	clients, err := s.repo.RecentClients(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent clients: %w", err)
	}
	memberships, err := s.repo.RecentMemberships(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent memberships: %w", err)
	}
	payments, err := s.repo.RecentPayments(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent payments: %w", err)
	}
	open, err := s.visits.ListOpenVisits(ctx)
	if err != nil {
		return nil, fmt.Errorf("open visits: %w", err)
	}
	if len(open) > recentVisitLimit {
		open = open[:recentVisitLimit]
	}

	return &RecentActivity{
		RecentClients:     clients,
		RecentMemberships: memberships,
		RecentPayments:    payments,
		ActiveGymSessions: open,
	}, nil
}
