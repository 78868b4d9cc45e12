package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/barcart/barcart/internal/browse"
	"github.com/barcart/barcart/internal/cocktails"
	"github.com/barcart/barcart/internal/store"
)

// DetailPage is the template data for the drink detail view.
type DetailPage struct {
	BasePage
	Drink     *cocktails.Drink
	Saved     bool   // already on the favorites shelf
	Note      string // saved note, when Saved
	BackURL   string
	LoadError string
}

// NotFoundPage is the template data for a recoverable miss.
type NotFoundPage struct {
	BasePage
	DrinkID string
	BackURL string
}

// DetailHandler serves single-drink pages.
type DetailHandler struct {
	fetcher   browse.Fetcher
	favorites store.FavoriteStoreIface
	sessions  *scs.SessionManager
}

func NewDetailHandler(fetcher browse.Fetcher, favorites store.FavoriteStoreIface, sessions *scs.SessionManager) *DetailHandler {
	return &DetailHandler{fetcher: fetcher, favorites: favorites, sessions: sessions}
}

// Show renders one drink. An unknown id gets a proper not-found page with a
// way back to where the user was, never a bare error.
func (h *DetailHandler) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	back := lastViewURL(r, h.sessions)

	d, err := h.fetcher.Lookup(r.Context(), id)
	if err != nil {
		var nf *browse.NotFoundError
		if errors.As(err, &nf) {
			w.WriteHeader(http.StatusNotFound)
			render(w, "notfound.html", NotFoundPage{
				BasePage: BasePage{Title: "Drink not found"},
				DrinkID:  nf.ID,
				BackURL:  back,
			})
			return
		}
		log.Printf("detail lookup %s: %v", id, err)
		w.WriteHeader(http.StatusBadGateway)
		render(w, "detail.html", DetailPage{
			BasePage:  BasePage{Title: "Drink unavailable"},
			BackURL:   back,
			LoadError: "The drink database is not responding. Please try again.",
		})
		return
	}

	page := DetailPage{
		BasePage: BasePage{Title: d.Name, Flash: popFlash(r, h.sessions)},
		Drink:    d,
		BackURL:  back,
	}
	if fav, err := h.favorites.Get(r.Context(), d.ID); err == nil {
		page.Saved = true
		page.Note = fav.Note
	}

	render(w, "detail.html", page)
}
