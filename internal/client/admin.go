package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
)

// CreateProductInput mirrors the admin form: field-level rules are checked
// locally before any request goes out.
type CreateProductInput struct {
	Name        string  `validate:"required"`
	Price       float64 `validate:"required,gt=0"`
	Description string
	CategoryID  int64 `validate:"required,gt=0"`

	// Optional image: filename plus content.
	ImageName string
	Image     io.Reader
}

func (c *Client) CreateProduct(ctx context.Context, in CreateProductInput) (*Product, error) {
	if err := c.validate.Struct(in); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("name", in.Name)
	_ = mw.WriteField("price", strconv.FormatFloat(in.Price, 'f', -1, 64))
	_ = mw.WriteField("description", in.Description)
	_ = mw.WriteField("categoryId", strconv.FormatInt(in.CategoryID, 10))
	if in.Image != nil {
		fw, err := mw.CreateFormFile("image", in.ImageName)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(fw, in.Image); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	var p Product
	if err := c.do(ctx, http.MethodPost, "/api/products", &buf, mw.FormDataContentType(), &p); err != nil {
		return nil, err
	}
	c.products = append(c.products, p)
	return &p, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/products/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, "", nil); err != nil {
		return err
	}
	kept := c.products[:0]
	for _, p := range c.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.products = kept
	return nil
}

func (c *Client) CreateCategory(ctx context.Context, name string) (*Category, error) {
	var cat Category
	if err := c.postJSON(ctx, "/api/categories", map[string]string{"name": name}, &cat); err != nil {
		return nil, err
	}
	c.categories = append(c.categories, cat)
	return &cat, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/categories/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, "", nil); err != nil {
		return err
	}
	kept := c.categories[:0]
	for _, cat := range c.categories {
		if cat.ID != id {
			kept = append(kept, cat)
		}
	}
	c.categories = kept
	return nil
}

// CachedProducts returns the locally mirrored product list without a
// round trip. It reflects the last fetch plus optimistic admin updates.
func (c *Client) CachedProducts() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Client) CachedCategories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}
