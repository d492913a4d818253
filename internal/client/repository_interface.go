package client

import "context"

type Repository interface {
	List(ctx context.Context) ([]Client, error)
	GetByID(ctx context.Context, id int64) (*Client, error)
	Create(ctx context.Context, p Params) (*Client, error)
	Update(ctx context.Context, id int64, p Params) (*Client, error)
	Delete(ctx context.Context, id int64) error
}
