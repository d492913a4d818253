package packages

import "context"

type Repository interface {
	List(ctx context.Context) ([]PackageWithCounts, error)
	GetByID(ctx context.Context, id int64) (*PackageWithCounts, error)
	ListInstructors(ctx context.Context, packageID int64) ([]InstructorRef, error)
	Create(ctx context.Context, req CreateRequest) (*Package, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Package, error)
	Delete(ctx context.Context, id int64) error
}
