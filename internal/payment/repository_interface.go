package payment

import "context"

type Repository interface {
	List(ctx context.Context) ([]PaymentWithClient, error)
	ListByClient(ctx context.Context, clientID int64) ([]Payment, error)
	GetByID(ctx context.Context, id int64) (*PaymentWithClient, error)
	Create(ctx context.Context, clientID int64, paymentType string, description *string) (*PaymentWithClient, error)
	Update(ctx context.Context, id int64, clientID *int64, paymentType, description *string) (*PaymentWithClient, error)
	Delete(ctx context.Context, id int64) error
}
