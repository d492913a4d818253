package client

import (
	"context"
	"fmt"

	"github.com/Amin-Golden/GymWeb/internal/membership"
	"github.com/Amin-Golden/GymWeb/internal/payment"
	"github.com/Amin-Golden/GymWeb/internal/visit"
)

type Service interface {
	List(ctx context.Context) ([]ClientWithMemberships, error)
	Get(ctx context.Context, id int64) (*ClientDetails, error)
	Create(ctx context.Context, p Params) (*Client, error)
	Update(ctx context.Context, id int64, p Params) (*Client, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	clientRepo     Repository
	membershipRepo membership.Repository
	paymentRepo    payment.Repository
	visitRepo      visit.Repository
}

func NewService(
	clientRepo Repository,
	membershipRepo membership.Repository,
	paymentRepo payment.Repository,
	visitRepo visit.Repository,
) Service {
	return &service{
		clientRepo:     clientRepo,
		membershipRepo: membershipRepo,
		paymentRepo:    paymentRepo,
		visitRepo:      visitRepo,
	}
}

func (s *service) List(ctx context.Context) ([]ClientWithMemberships, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	memberships, err := s.membershipRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}

	byClient := make(map[int64][]membership.Details, len(clients))
	for _, m := range memberships {
		id := m.ClientID.Int64()
		byClient[id] = append(byClient[id], m)
	}

	out := make([]ClientWithMemberships, 0, len(clients))
	for _, c := range clients {
		ms := byClient[c.ID.Int64()]
		if ms == nil {
			ms = []membership.Details{}
		}
		out = append(out, ClientWithMemberships{Client: c, Memberships: ms})
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id int64) (*ClientDetails, error) {
	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	memberships, err := s.membershipRepo.ListByClient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	payments, err := s.paymentRepo.ListByClient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	visits, err := s.visitRepo.ListClientVisits(ctx, id, RecentVisitLimit)
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	if visits == nil {
		visits = []visit.Visit{}
	}

	return &ClientDetails{
		Client:      *c,
		Memberships: memberships,
		Payments:    payments,
		GymSessions: visits,
	}, nil
}

func (s *service) Create(ctx context.Context, p Params) (*Client, error) {
	return s.clientRepo.Create(ctx, p)
}

func (s *service) Update(ctx context.Context, id int64, p Params) (*Client, error) {
	return s.clientRepo.Update(ctx, id, p)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.clientRepo.Delete(ctx, id)
}
