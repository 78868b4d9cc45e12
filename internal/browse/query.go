// Package browse is the view engine behind the drink browser: a canonical
// view query, its URL codec, page fetching with envelope normalization, a
// controller that sequences overlapping fetches, and derived pagination facts.
package browse

import "strings"

// Mode is the active discriminator of a view: which kind of listing the user
// is looking at. At most one discriminator is set after any transition; Mode
// resolves hand-built queries with several set by fixed priority.
type Mode int

const (
	ModeDefault Mode = iota // unfiltered listing
	ModeSearch              // free-text name search
	ModeCategory            // category filter
	ModeLetter              // first-letter search
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeCategory:
		return "category"
	case ModeLetter:
		return "letter"
	default:
		return "default"
	}
}

// ViewQuery is the complete description of what the user wants to see:
// discriminator, zero-based offset of the first item, and page size. Values
// are immutable; transitions return a derived copy.
type ViewQuery struct {
	Search   string
	Letter   string
	Category string
	Index    int
	Limit    int
}

// NewViewQuery returns the default unfiltered view with the given page size.
func NewViewQuery(limit int) ViewQuery {
	return ViewQuery{Limit: limit}
}

// Mode reports the active discriminator. Priority letter > category > search
// mirrors fetch endpoint selection; normal transitions never set more than one.
func (q ViewQuery) Mode() Mode {
	switch {
	case q.Letter != "":
		return ModeLetter
	case q.Category != "":
		return ModeCategory
	case q.Search != "":
		return ModeSearch
	default:
		return ModeDefault
	}
}

// WithSearch returns the view for a submitted search term. The term is
// trimmed; an empty term clears every discriminator and restores the default
// listing. Changing discriminator resets the offset.
func (q ViewQuery) WithSearch(text string) ViewQuery {
	q.Search = strings.TrimSpace(text)
	q.Letter = ""
	q.Category = ""
	q.Index = 0
	return q
}

// WithLetter returns the view for a first-letter search. Letter length is
// validated at fetch time, not here.
func (q ViewQuery) WithLetter(letter string) ViewQuery {
	q.Letter = letter
	q.Search = ""
	q.Category = ""
	q.Index = 0
	return q
}

// WithCategory returns the view for a category filter; an empty category
// restores the default listing.
func (q ViewQuery) WithCategory(category string) ViewQuery {
	q.Category = category
	q.Search = ""
	q.Letter = ""
	q.Index = 0
	return q
}

// Next returns the view advanced by one page. Callers gate on HasMore; Next
// itself only moves the offset.
func (q ViewQuery) Next() ViewQuery {
	q.Index += q.Limit
	return q
}

// Prev returns the view moved back one page, clamped at offset zero.
func (q ViewQuery) Prev() ViewQuery {
	q.Index -= q.Limit
	if q.Index < 0 {
		q.Index = 0
	}
	return q
}
