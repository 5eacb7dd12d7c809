// Package client is the data layer the storefront and admin screens talk
// through: one HTTP wrapper around the API server holding the logged-in
// user and session token in memory.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"imageUrl"`
	CategoryID  int64   `json:"categoryId"`
}

type Client struct {
	baseURL  string
	hc       *http.Client
	validate *validator.Validate

	token string
	user  *User

	// Local mirrors of server lists, kept by the admin operations:
	// appended on create, filtered on delete.
	products   []Product
	categories []Category
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:  baseURL,
		hc:       &http.Client{},
		validate: validator.New(),
	}
}

type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &apiError{Status: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(data), "application/json", out)
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (c *Client) Register(ctx context.Context, in RegisterInput) (*User, error) {
	if err := c.validate.Struct(in); err != nil {
		return nil, err
	}
	var u User
	if err := c.postJSON(ctx, "/api/register", in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login stores the returned user and session token; later requests carry
// the token until Logout.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	payload := map[string]string{"email": email, "password": password}
	var result struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := c.postJSON(ctx, "/api/login", payload, &result); err != nil {
		return nil, err
	}
	c.token = result.Token
	c.user = &result.User
	return c.user, nil
}

// Logout discards the locally held user and credential.
func (c *Client) Logout() {
	c.token = ""
	c.user = nil
}

func (c *Client) CurrentUser() *User {
	return c.user
}

func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, "", &products); err != nil {
		return nil, err
	}
	c.products = products
	return products, nil
}

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, "", &categories); err != nil {
		return nil, err
	}
	c.categories = categories
	return categories, nil
}
