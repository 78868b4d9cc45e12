package handler

import (
	"io/fs"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/barcart/barcart/docs/swagger"
	"github.com/barcart/barcart/internal/api"
	"github.com/barcart/barcart/internal/browse"
	"github.com/barcart/barcart/internal/catalog"
	"github.com/barcart/barcart/internal/store"
	"github.com/barcart/barcart/web"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	SessionManager *scs.SessionManager
	Catalog        *catalog.Service
	Fetcher        browse.Fetcher
	FavoriteStore  store.FavoriteStoreIface
	PageSize       int
}

// NewRouter assembles the full chi router: HTML pages, the JSON API under
// /api/v1, static assets, metrics, and API docs.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(deps.SessionManager.LoadAndSave)

	// Static assets (embedded). Use fs.Sub so the file server sees
	// css/app.css directly, not static/css/... paths.
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.FS(staticSub))))

	codec := browse.Codec{DefaultLimit: deps.PageSize}
	browseH := NewBrowseHandler(deps.Fetcher, deps.Catalog, deps.SessionManager, codec)
	detailH := NewDetailHandler(deps.Fetcher, deps.FavoriteStore, deps.SessionManager)
	favsH := NewFavoritesHandler(deps.FavoriteStore, deps.SessionManager)

	r.Get("/", browseH.Show)
	r.Get("/drinks/{id}", detailH.Show)
	r.Get("/favorites", favsH.Index)
	r.Post("/favorites", favsH.Save)
	r.Post("/favorites/{id}/delete", favsH.Delete)

	r.Mount("/api/v1", api.NewAPIRouter(api.Deps{Catalog: deps.Catalog}))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
