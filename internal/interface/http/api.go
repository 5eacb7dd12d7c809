package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"

	domcategory "example.com/clothify/internal/domain/category"
	domproduct "example.com/clothify/internal/domain/product"
	domuser "example.com/clothify/internal/domain/user"
	"example.com/clothify/internal/infra/media"
	authuc "example.com/clothify/internal/usecase/auth"
	categoryuc "example.com/clothify/internal/usecase/category"
	productuc "example.com/clothify/internal/usecase/product"
)

// UploadURLPrefix is where stored images are served from; image references
// in responses are resolved against it.
const UploadURLPrefix = "/uploads/"

type API struct {
	authSvc     *authuc.Service
	categorySvc *categoryuc.Service
	productSvc  *productuc.Service
	tokenSvc    authuc.TokenService
	validator   *validator.Validate

	uploadDir      string
	maxUploadBytes int64
	allowedOrigins []string
}

type Dependencies struct {
	AuthService     *authuc.Service
	CategoryService *categoryuc.Service
	ProductService  *productuc.Service
	TokenService    authuc.TokenService

	UploadDir      string
	MaxUploadBytes int64
	AllowedOrigins []string
}

func NewAPI(deps Dependencies) *API {
	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	maxUpload := deps.MaxUploadBytes
	if maxUpload == 0 {
		maxUpload = 10 << 20
	}
	return &API{
		authSvc:        deps.AuthService,
		categorySvc:    deps.CategoryService,
		productSvc:     deps.ProductService,
		tokenSvc:       deps.TokenService,
		validator:      validator.New(),
		uploadDir:      deps.UploadDir,
		maxUploadBytes: maxUpload,
		allowedOrigins: origins,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "running"})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if a.uploadDir != "" {
		fs := http.StripPrefix(UploadURLPrefix, http.FileServer(http.Dir(a.uploadDir)))
		r.Handle(UploadURLPrefix+"*", fs)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", a.handleRegister)
		r.Post("/login", a.handleLogin)
		r.Get("/products", a.handleListProducts)
		r.Get("/categories", a.handleListCategories)

		r.Group(func(ar chi.Router) {
			ar.Use(a.authMiddleware)
			ar.Post("/products", a.handleCreateProduct)
			ar.Delete("/products/{id}", a.handleDeleteProduct)
			ar.Post("/categories", a.handleCreateCategory)
			ar.Delete("/categories/{id}", a.handleDeleteCategory)
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	idStr := chi.URLParam(r, key)
	return strconv.ParseInt(idStr, 10, 64)
}

func mapUser(u *domuser.User) map[string]any {
	return map[string]any{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
	}
}

func mapCategory(c *domcategory.Category) map[string]any {
	return map[string]any{
		"id":   c.ID,
		"name": c.Name,
	}
}

func mapProduct(p *domproduct.Product) map[string]any {
	var imageURL any
	if p.ImagePath != nil {
		imageURL = UploadURLPrefix + *p.ImagePath
	}
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"imageUrl":    imageURL,
		"categoryId":  p.CategoryID,
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domuser.ErrInvalidCredential):
		respondError(w, http.StatusUnauthorized, err)
	case errors.Is(err, domuser.ErrEmailAlreadyUsed),
		errors.Is(err, domcategory.ErrCategoryInUse):
		respondError(w, http.StatusConflict, err)
	case errors.Is(err, domuser.ErrUserNotFound),
		errors.Is(err, domcategory.ErrCategoryNotFound),
		errors.Is(err, domproduct.ErrProductNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domcategory.ErrCategoryInvalidName),
		errors.Is(err, domproduct.ErrInvalidPrice),
		errors.Is(err, media.ErrInvalidFileType),
		errors.Is(err, media.ErrFileTooLarge):
		respondError(w, http.StatusBadRequest, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
