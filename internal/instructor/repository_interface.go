package instructor

import "context"

type Repository interface {
	List(ctx context.Context) ([]InstructorWithPackage, error)
	GetByID(ctx context.Context, id int64) (*InstructorWithPackage, error)
	Create(ctx context.Context, p Params) (*InstructorWithPackage, error)
	Update(ctx context.Context, id int64, p Params) (*InstructorWithPackage, error)
	Delete(ctx context.Context, id int64) error
}
