package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domcategory "example.com/clothify/internal/domain/category"
	domproduct "example.com/clothify/internal/domain/product"
	domuser "example.com/clothify/internal/domain/user"
	"example.com/clothify/internal/infra/media"
	"example.com/clothify/internal/infra/security"
	authuc "example.com/clothify/internal/usecase/auth"
	categoryuc "example.com/clothify/internal/usecase/category"
	productuc "example.com/clothify/internal/usecase/product"
)

const testJWTSecret = "test-secret"

// Mock user repository

type mockUserRepo struct {
	users  map[string]*domuser.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domuser.User), nextID: 1}
}

func (m *mockUserRepo) Create(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	if _, ok := m.users[u.Email]; ok {
		return nil, domuser.ErrEmailAlreadyUsed
	}
	u.ID = m.nextID
	m.nextID++
	m.users[u.Email] = u
	return u, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domuser.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domuser.ErrUserNotFound
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domuser.User, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, domuser.ErrUserNotFound
}

// Mock category repository

type mockCategoryRepo struct {
	categories map[int64]*domcategory.Category
	nextID     int64
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[int64]*domcategory.Category), nextID: 1}
}

func (m *mockCategoryRepo) Create(ctx context.Context, c *domcategory.Category) (*domcategory.Category, error) {
	c.ID = m.nextID
	m.nextID++
	m.categories[c.ID] = c
	return c, nil
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.categories[id]; !ok {
		return domcategory.ErrCategoryNotFound
	}
	delete(m.categories, id)
	return nil
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id int64) (*domcategory.Category, error) {
	if c, ok := m.categories[id]; ok {
		cloned := *c
		return &cloned, nil
	}
	return nil, domcategory.ErrCategoryNotFound
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]*domcategory.Category, error) {
	result := make([]*domcategory.Category, 0, len(m.categories))
	for id := int64(1); id < m.nextID; id++ {
		if c, ok := m.categories[id]; ok {
			cloned := *c
			result = append(result, &cloned)
		}
	}
	return result, nil
}

// Mock product repository

type mockProductRepo struct {
	products map[int64]*domproduct.Product
	nextID   int64
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[int64]*domproduct.Product), nextID: 1}
}

func (m *mockProductRepo) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	p.ID = m.nextID
	m.nextID++
	m.products[p.ID] = p
	return p, nil
}

func (m *mockProductRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.products[id]; !ok {
		return domproduct.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *mockProductRepo) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	if p, ok := m.products[id]; ok {
		cloned := *p
		return &cloned, nil
	}
	return nil, domproduct.ErrProductNotFound
}

func (m *mockProductRepo) List(ctx context.Context) ([]*domproduct.Product, error) {
	result := make([]*domproduct.Product, 0, len(m.products))
	for id := int64(1); id < m.nextID; id++ {
		if p, ok := m.products[id]; ok {
			cloned := *p
			result = append(result, &cloned)
		}
	}
	return result, nil
}

func (m *mockProductRepo) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var n int64
	for _, p := range m.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

// Test wiring

type testEnv struct {
	api          *API
	userRepo     *mockUserRepo
	categoryRepo *mockCategoryRepo
	productRepo  *mockProductRepo
	mediaStore   *media.Store
	tokenSvc     *security.JWTService
	uploadDir    string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	uploadDir := t.TempDir()
	mediaStore, err := media.NewStore(uploadDir, 1<<20)
	require.NoError(t, err)

	userRepo := newMockUserRepo()
	categoryRepo := newMockCategoryRepo()
	productRepo := newMockProductRepo()

	hasher := security.NewBcryptService(4)
	tokenSvc := security.NewJWTService(testJWTSecret, time.Hour)

	api := NewAPI(Dependencies{
		AuthService:     authuc.NewService(userRepo, hasher, tokenSvc),
		CategoryService: categoryuc.NewService(categoryRepo, productRepo),
		ProductService:  productuc.NewService(productRepo, mediaStore),
		TokenService:    tokenSvc,
		UploadDir:       uploadDir,
		MaxUploadBytes:  1 << 20,
	})

	return &testEnv{
		api:          api,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		mediaStore:   mediaStore,
		tokenSvc:     tokenSvc,
		uploadDir:    uploadDir,
	}
}

func (e *testEnv) authHeader(t *testing.T) string {
	t.Helper()
	token, err := e.tokenSvc.GenerateToken(&domuser.User{ID: 1, Name: "Admin", Email: "admin@example.com"})
	require.NoError(t, err)
	return "Bearer " + token
}

func (e *testEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.api.Router().ServeHTTP(rec, req)
	return rec
}

// pngBytes is a minimal payload that content sniffing identifies as PNG.
var pngBytes = append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A},
	[]byte(strings.Repeat("\x00", 32))...)
