package membership

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Details, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Details), args.Error(1)
}

func (m *MockRepository) ListByClient(ctx context.Context, clientID int64) ([]Details, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Details), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Details, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Details), args.Error(1)
}

func (m *MockRepository) ListSessions(ctx context.Context, membershipID int64) ([]SessionRef, error) {
	args := m.Called(ctx, membershipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]SessionRef), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, p CreateParams) (*Details, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Details), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int64, p UpdateParams) (*Details, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Details), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) ClientExists(ctx context.Context, clientID int64) (bool, error) {
	args := m.Called(ctx, clientID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) HasActiveMembership(ctx context.Context, clientID int64, now time.Time) (bool, error) {
	args := m.Called(ctx, clientID, now)
	return args.Bool(0), args.Error(1)
}
