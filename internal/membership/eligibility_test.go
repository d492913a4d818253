package membership

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEligibility_IsEligible(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(*MockRepository)
		want      bool
		wantErr   error
	}{
		{
			name: "paid and unexpired membership",
			setupMock: func(m *MockRepository) {
				m.On("ClientExists", mock.Anything, int64(1)).Return(true, nil)
				m.On("HasActiveMembership", mock.Anything, int64(1), now).Return(true, nil)
			},
			want: true,
		},
		{
			name: "no qualifying membership",
			setupMock: func(m *MockRepository) {
				m.On("ClientExists", mock.Anything, int64(1)).Return(true, nil)
				m.On("HasActiveMembership", mock.Anything, int64(1), now).Return(false, nil)
			},
			want: false,
		},
		{
			name: "unknown client",
			setupMock: func(m *MockRepository) {
				m.On("ClientExists", mock.Anything, int64(1)).Return(false, nil)
			},
			wantErr: ErrClientNotFound,
		},
		{
			name: "storage failure",
			setupMock: func(m *MockRepository) {
				m.On("ClientExists", mock.Anything, int64(1)).Return(false, errors.New("connection reset"))
			},
			wantErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			tt.setupMock(repo)

			got, err := NewEligibility(repo).IsEligible(context.Background(), 1, now)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.False(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestMembership_ActiveAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, Membership{IsPaid: true, EndDate: now}.ActiveAt(now))
	assert.True(t, Membership{IsPaid: true, EndDate: now.Add(time.Hour)}.ActiveAt(now))
	assert.False(t, Membership{IsPaid: true, EndDate: now.Add(-time.Second)}.ActiveAt(now))
	assert.False(t, Membership{IsPaid: false, EndDate: now.Add(time.Hour)}.ActiveAt(now))
}
