package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"

	"github.com/barcart/barcart/internal/browse"
	"github.com/barcart/barcart/internal/catalog"
	"github.com/barcart/barcart/internal/cocktails"
	"github.com/barcart/barcart/internal/session"
)

// FilterLink is one letter or category chip with its target URL.
type FilterLink struct {
	Label  string
	URL    string
	Active bool
}

// BrowsePage is the template data for the browse view.
type BrowsePage struct {
	BasePage
	Query      browse.ViewQuery
	Drinks     []cocktails.Drink
	Pagination browse.PaginationView
	Letters    []FilterLink
	Categories []FilterLink
	NextURL    string // empty when there is no next page
	PrevURL    string // empty on the first page
	ClearURL   string
	LoadError  string // upstream failure banner; results may be stale or empty
}

// BrowseHandler serves the main paginated drink browser. The URL query
// string is the only view state: every request decodes it, resolves one
// page, and derives the pagination facts fresh.
type BrowseHandler struct {
	fetcher  browse.Fetcher
	cat      *catalog.Service
	sessions *scs.SessionManager
	codec    browse.Codec
}

func NewBrowseHandler(fetcher browse.Fetcher, cat *catalog.Service, sessions *scs.SessionManager, codec browse.Codec) *BrowseHandler {
	return &BrowseHandler{fetcher: fetcher, cat: cat, sessions: sessions, codec: codec}
}

// Show renders the browse page for whatever view the URL encodes.
func (h *BrowseHandler) Show(w http.ResponseWriter, r *http.Request) {
	q := h.codec.Decode(r.URL.Query())

	page := BrowsePage{
		BasePage: BasePage{Title: pageTitle(q), Flash: popFlash(r, h.sessions)},
		Query:    q,
		ClearURL: "/",
	}

	res, err := h.fetcher.Resolve(r.Context(), q)
	switch {
	case err == nil:
		page.Drinks = res.Drinks
		page.Pagination = browse.Derive(q, res)
		if res.HasMore {
			page.NextURL = "/" + h.codec.EncodeString(q.Next())
		}
		if q.Index > 0 {
			page.PrevURL = "/" + h.codec.EncodeString(q.Prev())
		}
		// Remember where the user is so detail pages can link back.
		h.sessions.Put(r.Context(), session.LastViewKey, h.codec.EncodeString(q))
	default:
		var verr *browse.ValidationError
		if errors.As(err, &verr) {
			page.LoadError = verr.Error()
		} else {
			log.Printf("browse fetch: %v", err)
			page.LoadError = "The drink database is not responding. Please try again."
		}
	}

	page.Letters = h.letterLinks(q)
	page.Categories = h.categoryLinks(r, q)

	render(w, "browse.html", page)
}

func (h *BrowseHandler) letterLinks(q browse.ViewQuery) []FilterLink {
	links := make([]FilterLink, 0, 26)
	for ch := 'a'; ch <= 'z'; ch++ {
		letter := string(ch)
		links = append(links, FilterLink{
			Label:  strings.ToUpper(letter),
			URL:    "/" + h.codec.EncodeString(q.WithLetter(letter)),
			Active: q.Letter == letter,
		})
	}
	return links
}

func (h *BrowseHandler) categoryLinks(r *http.Request, q browse.ViewQuery) []FilterLink {
	cats, err := h.cat.Categories(r.Context())
	if err != nil {
		// The chips are a nicety; the page works without them.
		log.Printf("list categories: %v", err)
		return nil
	}
	links := make([]FilterLink, 0, len(cats))
	for _, c := range cats {
		links = append(links, FilterLink{
			Label:  c.Name,
			URL:    "/" + h.codec.EncodeString(q.WithCategory(c.Name)),
			Active: q.Category == c.Name,
		})
	}
	return links
}

func pageTitle(q browse.ViewQuery) string {
	switch q.Mode() {
	case browse.ModeSearch:
		return `Search: ` + q.Search
	case browse.ModeLetter:
		return `Drinks starting with ` + strings.ToUpper(q.Letter)
	case browse.ModeCategory:
		return q.Category
	default:
		return "All drinks"
	}
}
