package product

import "context"

type Repository interface {
	Create(ctx context.Context, p *Product) (*Product, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
}
