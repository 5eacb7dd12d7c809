package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	domproduct "example.com/clothify/internal/domain/product"
)

func postAuthedJSON(t *testing.T, env *testEnv, path string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", env.authHeader(t))
	return env.serve(req)
}

func TestCreateCategory_Returns201WithID(t *testing.T) {
	env := newTestEnv(t)

	rec := postAuthedJSON(t, env, "/api/categories", map[string]any{"name": "Shoes"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, float64(1), resp["id"])
	require.Equal(t, "Shoes", resp["name"])
}

func TestCreateCategory_EmptyNameReturns400(t *testing.T) {
	env := newTestEnv(t)

	rec := postAuthedJSON(t, env, "/api/categories", map[string]any{"name": ""})
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestListCategories_ReturnsAll(t *testing.T) {
	env := newTestEnv(t)

	for _, name := range []string{"Shoes", "Shirts"} {
		rec := postAuthedJSON(t, env, "/api/categories", map[string]any{"name": name})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := env.serve(req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	require.Equal(t, "Shoes", list[0]["name"])
	require.Equal(t, "Shirts", list[1]["name"])
}

func TestDeleteCategory_Succeeds(t *testing.T) {
	env := newTestEnv(t)

	rec := postAuthedJSON(t, env, "/api/categories", map[string]any{"name": "Shoes"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	req := httptest.NewRequest(http.MethodDelete, "/api/categories/1", nil)
	req.Header.Set("Authorization", env.authHeader(t))
	rec = env.serve(req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Empty(t, env.categoryRepo.categories)
}

func TestDeleteCategory_UnknownIDReturns404(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/categories/42", nil)
	req.Header.Set("Authorization", env.authHeader(t))
	rec := env.serve(req)
	require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
}

func TestDeleteCategory_ReferencedByProductReturns409(t *testing.T) {
	env := newTestEnv(t)

	rec := postAuthedJSON(t, env, "/api/categories", map[string]any{"name": "Shoes"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	_, err := env.productRepo.Create(t.Context(), &domproduct.Product{
		Name:       "Sneaker",
		Price:      49.99,
		CategoryID: 1,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/categories/1", nil)
	req.Header.Set("Authorization", env.authHeader(t))
	rec = env.serve(req)
	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	// Category must still exist.
	require.Len(t, env.categoryRepo.categories, 1)
}

func TestDeleteCategory_WithoutTokenReturns401(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/categories/1", nil)
	rec := env.serve(req)
	require.Equal(t, http.StatusUnauthorized, rec.Code, rec.Body.String())
}
