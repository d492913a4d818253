package training

import "context"

type Repository interface {
	List(ctx context.Context) ([]SessionDetails, error)
	GetByID(ctx context.Context, id int64) (*SessionDetails, error)
	Create(ctx context.Context, p Params) (*SessionDetails, error)
	Update(ctx context.Context, id int64, p Params) (*SessionDetails, error)
	Delete(ctx context.Context, id int64) error
}
