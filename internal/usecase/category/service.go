package category

import (
	"context"
	"strings"

	dom "example.com/clothify/internal/domain/category"
)

// ProductCounter reports how many products still reference a category.
type ProductCounter interface {
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
}

type Service struct {
	repo     dom.Repository
	products ProductCounter
}

func NewService(repo dom.Repository, products ProductCounter) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) Create(ctx context.Context, name string) (*dom.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dom.ErrCategoryInvalidName
	}
	return s.repo.Create(ctx, &dom.Category{Name: name})
}

// Delete refuses to remove a category while products still reference it.
func (s *Service) Delete(ctx context.Context, id int64) (*dom.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	n, err := s.products.CountByCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, dom.ErrCategoryInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]*dom.Category, error) {
	return s.repo.List(ctx)
}
