package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"lostfound-api/internal/data/entity"
	"lostfound-api/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCategoryRepo struct {
	categories []*entity.Category
	err        error
}

func (f *fakeCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	return f.categories, f.err
}

type fakeLocationRepo struct {
	locations []*entity.Location
	err       error
}

func (f *fakeLocationRepo) FindAll(ctx context.Context) ([]*entity.Location, error) {
	return f.locations, f.err
}

func newReferenceRouter(categoryRepo *fakeCategoryRepo, locationRepo *fakeLocationRepo) *chi.Mux {
	log := zap.NewNop()
	handler := NewReferenceHandler(usecase.NewReferenceService(categoryRepo, locationRepo, log), log)

	r := chi.NewRouter()
	r.Get("/categories", handler.Categories)
	r.Get("/locations", handler.Locations)
	return r
}

func TestReferenceEndpoints(t *testing.T) {
	router := newReferenceRouter(
		&fakeCategoryRepo{categories: []*entity.Category{
			{CategoryID: 2, CategoryName: "Documents"},
			{CategoryID: 1, CategoryName: "Electronics"},
		}},
		&fakeLocationRepo{locations: []*entity.Location{
			{LocationID: 4, LocationName: "Cafeteria"},
			{LocationID: 3, LocationName: "Library"},
		}},
	)

	var resp struct {
		Data []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}

	rec := doJSON(t, router, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Documents", resp.Data[0].Name)
	assert.Equal(t, int64(1), resp.Data[1].ID)

	rec = doJSON(t, router, http.MethodGet, "/locations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Cafeteria", resp.Data[0].Name)
}

func TestReferenceEndpointStoreFailure(t *testing.T) {
	router := newReferenceRouter(
		&fakeCategoryRepo{err: errors.New("connection refused")},
		&fakeLocationRepo{},
	)

	rec := doJSON(t, router, http.MethodGet, "/categories", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
