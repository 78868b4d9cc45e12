package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/barcart/barcart/internal/catalog"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	Catalog *catalog.Service
}

// NewAPIRouter creates the chi sub-router mounted at /api/v1. Every route is
// an unauthenticated GET returning application/json.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(jsonContentType)
	registerDrinkRoutes(r, deps.Catalog)
	return r
}

// jsonContentType sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
