package http

import (
	"errors"
	"net/http"
	"strconv"

	productuc "example.com/clothify/internal/usecase/product"
)

var (
	errMissingFields = errors.New("missing required fields")
	errInvalidTypes  = errors.New("invalid data types for price or categoryId")
)

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := a.productSvc.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(products))
	for _, p := range products {
		resp = append(resp, mapProduct(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleCreateProduct accepts a multipart form: name, price, description,
// categoryId and an optional image file. price and categoryId arrive as
// strings and must parse before anything is persisted.
func (a *API) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(a.maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	name := r.FormValue("name")
	priceStr := r.FormValue("price")
	description := r.FormValue("description")
	categoryIDStr := r.FormValue("categoryId")

	if name == "" || categoryIDStr == "" {
		respondError(w, http.StatusBadRequest, errMissingFields)
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, errInvalidTypes)
		return
	}
	categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, errInvalidTypes)
		return
	}

	in := productuc.CreateInput{
		Name:        name,
		Description: description,
		Price:       price,
		CategoryID:  categoryID,
	}

	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		in.Image = &productuc.Upload{Filename: header.Filename, Reader: file}
	case errors.Is(err, http.ErrMissingFile):
		// image is optional
	default:
		respondError(w, http.StatusBadRequest, err)
		return
	}

	p, err := a.productSvc.Create(r.Context(), in)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapProduct(p))
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	p, err := a.productSvc.Delete(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}
