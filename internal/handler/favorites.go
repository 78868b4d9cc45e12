package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/barcart/barcart/internal/metrics"
	"github.com/barcart/barcart/internal/store"
)

// FavoritesPage is the template data for the favorites shelf.
type FavoritesPage struct {
	BasePage
	Favorites []*store.Favorite
}

// FavoritesHandler manages the saved-drinks shelf.
type FavoritesHandler struct {
	favorites store.FavoriteStoreIface
	sessions  *scs.SessionManager
}

func NewFavoritesHandler(favorites store.FavoriteStoreIface, sessions *scs.SessionManager) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites, sessions: sessions}
}

// Index renders the shelf, newest first.
func (h *FavoritesHandler) Index(w http.ResponseWriter, r *http.Request) {
	favs, err := h.favorites.List(r.Context())
	if err != nil {
		log.Printf("list favorites: %v", err)
		http.Error(w, "could not load favorites", http.StatusInternalServerError)
		return
	}
	render(w, "favorites.html", FavoritesPage{
		BasePage:  BasePage{Title: "Favorites", Flash: popFlash(r, h.sessions)},
		Favorites: favs,
	})
}

// Save adds a drink to the shelf (or updates its note) and bounces back to
// the detail page.
func (h *FavoritesHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	drinkID := r.PostFormValue("drink_id")
	name := r.PostFormValue("name")
	if drinkID == "" || name == "" {
		http.Error(w, "drink_id and name are required", http.StatusBadRequest)
		return
	}

	_, err := h.favorites.Save(r.Context(), store.Favorite{
		DrinkID:   drinkID,
		Name:      name,
		Thumbnail: r.PostFormValue("thumbnail"),
		Category:  r.PostFormValue("category"),
		Note:      r.PostFormValue("note"),
	})
	if err != nil {
		log.Printf("save favorite %s: %v", drinkID, err)
		http.Error(w, "could not save favorite", http.StatusInternalServerError)
		return
	}
	h.updateGauge(r)

	putFlash(r, h.sessions, "success", name+" added to favorites")
	http.Redirect(w, r, "/drinks/"+drinkID, http.StatusSeeOther)
}

// Delete removes a drink from the shelf.
func (h *FavoritesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	drinkID := chi.URLParam(r, "id")
	if err := h.favorites.Delete(r.Context(), drinkID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("delete favorite %s: %v", drinkID, err)
		http.Error(w, "could not remove favorite", http.StatusInternalServerError)
		return
	}
	h.updateGauge(r)

	putFlash(r, h.sessions, "success", "Removed from favorites")
	http.Redirect(w, r, "/favorites", http.StatusSeeOther)
}

func (h *FavoritesHandler) updateGauge(r *http.Request) {
	if n, err := h.favorites.Count(r.Context()); err == nil {
		metrics.FavoritesTotal.Set(float64(n))
	}
}
