package product

import (
	"context"
	"io"

	dom "example.com/clothify/internal/domain/product"
)

// MediaStore is the slice of the media layer the service needs: persist an
// upload under a generated name, and remove one by name.
type MediaStore interface {
	Save(originalName string, r io.Reader) (string, error)
	Remove(name string) error
}

type Service struct {
	repo  dom.Repository
	media MediaStore
}

func NewService(repo dom.Repository, media MediaStore) *Service {
	return &Service{repo: repo, media: media}
}

type Upload struct {
	Filename string
	Reader   io.Reader
}

type CreateInput struct {
	Name        string
	Description string
	Price       float64
	CategoryID  int64
	Image       *Upload
}

// Create stores the image first and the row second. If the row insert
// fails the stored file is removed again so nothing is orphaned.
func (s *Service) Create(ctx context.Context, in CreateInput) (*dom.Product, error) {
	if in.Price <= 0 {
		return nil, dom.ErrInvalidPrice
	}

	var imagePath *string
	if in.Image != nil {
		name, err := s.media.Save(in.Image.Filename, in.Image.Reader)
		if err != nil {
			return nil, err
		}
		imagePath = &name
	}

	p, err := s.repo.Create(ctx, &dom.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImagePath:   imagePath,
		CategoryID:  in.CategoryID,
	})
	if err != nil {
		if imagePath != nil {
			_ = s.media.Remove(*imagePath)
		}
		return nil, err
	}
	return p, nil
}

// Delete removes the row and then the stored image, so the media directory
// does not accumulate files for products that no longer exist.
func (s *Service) Delete(ctx context.Context, id int64) (*dom.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	if p.ImagePath != nil {
		_ = s.media.Remove(*p.ImagePath)
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*dom.Product, error) {
	return s.repo.List(ctx)
}
