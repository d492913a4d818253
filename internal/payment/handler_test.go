package payment

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]PaymentWithClient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PaymentWithClient), args.Error(1)
}

func (m *MockRepository) ListByClient(ctx context.Context, clientID int64) ([]Payment, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Payment), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*PaymentWithClient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PaymentWithClient), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, clientID int64, paymentType string, description *string) (*PaymentWithClient, error) {
	args := m.Called(ctx, clientID, paymentType, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PaymentWithClient), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int64, clientID *int64, paymentType, description *string) (*PaymentWithClient, error) {
	args := m.Called(ctx, id, clientID, paymentType, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PaymentWithClient), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func setupPaymentRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(repo)
	r.POST("/payments", h.Create)
	r.GET("/payments/:id", h.Get)
	return r
}

func TestCreatePayment_Handler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", mock.Anything, int64(1), "cash", (*string)(nil)).
			Return(&PaymentWithClient{Payment: Payment{ID: 5, ClientID: 1, PaymentType: "cash"}}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(`{"clientId":"1","paymentType":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		setupPaymentRouter(repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"5"`)
		repo.AssertExpectations(t)
	})

	t.Run("MissingType", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(`{"clientId":"1"}`))
		req.Header.Set("Content-Type", "application/json")
		setupPaymentRouter(new(MockRepository)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "paymentType")
	})

	t.Run("UnknownClient", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", mock.Anything, int64(9), "cash", (*string)(nil)).Return(nil, ErrUnknownClient)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(`{"clientId":9,"paymentType":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		setupPaymentRouter(repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetPayment_Handler_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, int64(3)).Return(nil, ErrNotFound)

	w := httptest.NewRecorder()
	setupPaymentRouter(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payments/3", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Payment not found"}`, w.Body.String())
}
