package browse

import (
	"context"

	"github.com/barcart/barcart/internal/catalog"
	"github.com/barcart/barcart/internal/cocktails"
)

// LocalFetcher resolves views directly against the catalog service, for use
// inside the server process where a loopback HTTP hop would be pointless.
// It honors the same contract as Client: letter validation before any call,
// *FetchError for upstream failure, *NotFoundError for unknown ids.
type LocalFetcher struct {
	cat *catalog.Service
}

func NewLocalFetcher(cat *catalog.Service) *LocalFetcher {
	return &LocalFetcher{cat: cat}
}

func (f *LocalFetcher) Resolve(ctx context.Context, q ViewQuery) (*PageResult, error) {
	var (
		page *catalog.Page
		err  error
	)

	switch q.Mode() {
	case ModeLetter:
		if verr := validateLetter(q.Letter); verr != nil {
			return nil, verr
		}
		page, err = f.cat.LetterPage(ctx, q.Letter, q.Index, q.Limit)
	case ModeCategory:
		page, err = f.cat.CategoryPage(ctx, q.Category, q.Index, q.Limit)
	default:
		// Free-text and default listing share the search endpoint; the
		// empty term is the unfiltered view.
		page, err = f.cat.SearchPage(ctx, q.Search, q.Index, q.Limit)
	}
	if err != nil {
		return nil, &FetchError{Message: err.Error()}
	}

	return &PageResult{
		Drinks:     page.Drinks,
		TotalCount: page.TotalCount,
		TotalKnown: true,
		HasMore:    page.HasMore,
	}, nil
}

func (f *LocalFetcher) Lookup(ctx context.Context, id string) (*cocktails.Drink, error) {
	d, err := f.cat.Drink(ctx, id)
	if err != nil {
		return nil, &FetchError{Message: err.Error()}
	}
	if d == nil {
		return nil, &NotFoundError{ID: id}
	}
	return d, nil
}
