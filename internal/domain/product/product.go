package product

type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	// ImagePath is the generated filename inside the media store, nil when
	// the product was created without an image.
	ImagePath  *string
	CategoryID int64
}
