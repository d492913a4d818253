package visit

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) OpenVisit(ctx context.Context, clientID int64, now time.Time, lockerNumber *int) (*Visit, error) {
	args := m.Called(ctx, clientID, now, lockerNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Visit), args.Error(1)
}

func (m *MockRepository) CloseVisit(ctx context.Context, visitID int64, now time.Time) (*Visit, bool, error) {
	args := m.Called(ctx, visitID, now)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*Visit), args.Bool(1), args.Error(2)
}

func (m *MockRepository) GetVisit(ctx context.Context, visitID int64) (*VisitWithClient, error) {
	args := m.Called(ctx, visitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*VisitWithClient), args.Error(1)
}

func (m *MockRepository) FindOpenVisit(ctx context.Context, clientID int64) (*Visit, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Visit), args.Error(1)
}

func (m *MockRepository) ListOpenVisits(ctx context.Context) ([]VisitWithClient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]VisitWithClient), args.Error(1)
}

func (m *MockRepository) ListAllVisits(ctx context.Context) ([]VisitWithClient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]VisitWithClient), args.Error(1)
}

func (m *MockRepository) ListClientVisits(ctx context.Context, clientID int64, limit int) ([]Visit, error) {
	args := m.Called(ctx, clientID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Visit), args.Error(1)
}

type MockEligibility struct {
	mock.Mock
}

func (m *MockEligibility) IsEligible(ctx context.Context, clientID int64, now time.Time) (bool, error) {
	args := m.Called(ctx, clientID, now)
	return args.Bool(0), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishJSON(ctx context.Context, routingKey string, v any) error {
	return m.Called(ctx, routingKey, v).Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
