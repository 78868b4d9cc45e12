package api

import (
	"log"
	"net/http"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/barcart/barcart/internal/catalog"
	"github.com/barcart/barcart/internal/metrics"
)

// drinksHandler serves the proxy endpoints over the catalog service.
type drinksHandler struct {
	cat *catalog.Service
}

func registerDrinkRoutes(r chi.Router, cat *catalog.Service) {
	h := &drinksHandler{cat: cat}
	r.Get("/search", h.Search)
	r.Get("/search/letter", h.SearchLetter)
	r.Get("/filter/{category}", h.Filter)
	r.Get("/cocktail/{id}", h.Lookup)
	r.Get("/categories", h.Categories)
	r.Get("/popular", h.Popular)
	r.Get("/random", h.Random)
}

// Search handles free-text name search. An empty query is the unfiltered
// default listing.
// GET /api/v1/search?query=&index=&limit=
//
// @Summary      Search drinks by name
// @Description  Substring name search against the upstream database. An empty query returns the default listing.
// @Tags         Drinks
// @Produce      json
// @Param        query  query     string  false  "Search term"
// @Param        index  query     int     false  "Zero-based offset of the first item"  default(0)
// @Param        limit  query     int     false  "Page size (max 50)"  default(10)
// @Success      200    {object}  DrinkListResponse
// @Failure      502    {object}  ErrorResponse
// @Router       /search [get]
func (h *drinksHandler) Search(w http.ResponseWriter, r *http.Request) {
	index, limit := parseWindow(r)

	page, err := h.cat.SearchPage(r.Context(), r.URL.Query().Get("query"), index, limit)
	if err != nil {
		upstreamError(w, err)
		return
	}

	metrics.PagesServedTotal.WithLabelValues("search").Inc()
	writeJSON(w, http.StatusOK, windowedResponse(page, index, limit))
}

// SearchLetter handles first-letter search. firstLetter must be exactly one
// character; anything else is rejected before the upstream is contacted.
// GET /api/v1/search/letter?firstLetter=&index=&limit=
//
// @Summary      List drinks by first letter
// @Tags         Drinks
// @Produce      json
// @Param        firstLetter  query     string  true   "Exactly one character"
// @Param        index        query     int     false  "Zero-based offset of the first item"  default(0)
// @Param        limit        query     int     false  "Page size (max 50)"  default(10)
// @Success      200          {object}  DrinkListResponse
// @Failure      400          {object}  ErrorResponse
// @Failure      502          {object}  ErrorResponse
// @Router       /search/letter [get]
func (h *drinksHandler) SearchLetter(w http.ResponseWriter, r *http.Request) {
	letter := r.URL.Query().Get("firstLetter")
	if utf8.RuneCountInString(letter) != 1 {
		writeError(w, http.StatusBadRequest, "firstLetter must be exactly one character", "BAD_REQUEST")
		return
	}
	index, limit := parseWindow(r)

	page, err := h.cat.LetterPage(r.Context(), letter, index, limit)
	if err != nil {
		upstreamError(w, err)
		return
	}

	metrics.PagesServedTotal.WithLabelValues("letter").Inc()
	writeJSON(w, http.StatusOK, windowedResponse(page, index, limit))
}

// Filter handles category filtering. Records carry reduced fields (id, name,
// thumbnail) because the upstream filter endpoint returns no more than that.
// GET /api/v1/filter/{category}?index=&limit=
//
// @Summary      List drinks in a category
// @Tags         Drinks
// @Produce      json
// @Param        category  path      string  true   "Category name"
// @Param        index     query     int     false  "Zero-based offset of the first item"  default(0)
// @Param        limit     query     int     false  "Page size (max 50)"  default(10)
// @Success      200       {object}  DrinkListResponse
// @Failure      502       {object}  ErrorResponse
// @Router       /filter/{category} [get]
func (h *drinksHandler) Filter(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	index, limit := parseWindow(r)

	page, err := h.cat.CategoryPage(r.Context(), category, index, limit)
	if err != nil {
		upstreamError(w, err)
		return
	}

	metrics.PagesServedTotal.WithLabelValues("category").Inc()
	writeJSON(w, http.StatusOK, windowedResponse(page, index, limit))
}

// Lookup returns one drink with full detail fields. An unknown id yields
// 200 with a null drink, not 404: the lookup succeeded, the answer is "none".
// GET /api/v1/cocktail/{id}
//
// @Summary      Look up one drink
// @Tags         Drinks
// @Produce      json
// @Param        id   path      string  true  "Drink id"
// @Success      200  {object}  DrinkResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /cocktail/{id} [get]
func (h *drinksHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	d, err := h.cat.Drink(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		upstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DrinkResponse{Drink: d})
}

// Categories returns the upstream category list.
// GET /api/v1/categories
//
// @Summary      List drink categories
// @Tags         Drinks
// @Produce      json
// @Success      200  {object}  CategoryListResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /categories [get]
func (h *drinksHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.cat.Categories(r.Context())
	if err != nil {
		upstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CategoryListResponse{Categories: cats})
}

// Popular returns the curated popular drinks. No pagination block: the list
// is a fixed-size aggregation, not a window into anything.
// GET /api/v1/popular
//
// @Summary      Curated popular drinks
// @Tags         Drinks
// @Produce      json
// @Success      200  {object}  DrinkListResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /popular [get]
func (h *drinksHandler) Popular(w http.ResponseWriter, r *http.Request) {
	drinks, err := h.cat.Popular(r.Context())
	if err != nil {
		upstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DrinkListResponse{Drinks: drinks})
}

// Random returns one random drink in the bare list envelope.
// GET /api/v1/random
//
// @Summary      One random drink
// @Tags         Drinks
// @Produce      json
// @Success      200  {object}  DrinkResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /random [get]
func (h *drinksHandler) Random(w http.ResponseWriter, r *http.Request) {
	d, err := h.cat.Random(r.Context())
	if err != nil {
		upstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DrinkResponse{Drink: d})
}

// windowedResponse builds the full envelope for one catalog page.
func windowedResponse(page *catalog.Page, index, limit int) DrinkListResponse {
	total := page.TotalCount
	return DrinkListResponse{
		Drinks:     page.Drinks,
		TotalCount: &total,
		Pagination: &Pagination{
			HasMore:     page.HasMore,
			CurrentPage: index/limit + 1,
			TotalPages:  (total + limit - 1) / limit,
			PageSize:    limit,
			StartIndex:  page.StartIndex,
			EndIndex:    page.EndIndex,
		},
	}
}

func upstreamError(w http.ResponseWriter, err error) {
	log.Printf("upstream error: %v", err)
	writeError(w, http.StatusBadGateway, "upstream unavailable", "UPSTREAM_ERROR")
}
