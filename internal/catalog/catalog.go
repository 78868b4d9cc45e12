// Package catalog sits between the upstream client and the HTTP surfaces.
// The upstream returns whole, unpaginated result lists; catalog applies the
// index/limit window and computes the pagination facts the proxy contract
// promises.
package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/barcart/barcart/internal/cocktails"
)

// Source is the slice of the upstream client the catalog needs.
type Source interface {
	SearchByName(ctx context.Context, name string) ([]cocktails.Drink, error)
	SearchByLetter(ctx context.Context, letter string) ([]cocktails.Drink, error)
	FilterByCategory(ctx context.Context, category string) ([]cocktails.Drink, error)
	ListCategories(ctx context.Context) ([]cocktails.Category, error)
	LookupByID(ctx context.Context, id string) (*cocktails.Drink, error)
	Random(ctx context.Context) (*cocktails.Drink, error)
}

// Page is one window into a full upstream result list.
type Page struct {
	Drinks     []cocktails.Drink
	TotalCount int
	HasMore    bool
	StartIndex int
	EndIndex   int // exclusive
}

// popularNames are the curated lookups behind the popular aggregation, merged
// in this order. Fixed cardinality: the fan-out never grows with input.
var popularNames = [4]string{"margarita", "mojito", "old fashioned", "negroni"}

type Service struct {
	src Source
}

func New(src Source) *Service {
	return &Service{src: src}
}

// SearchPage resolves a free-text search (empty name is the unfiltered
// default listing) and windows the result.
func (s *Service) SearchPage(ctx context.Context, name string, index, limit int) (*Page, error) {
	drinks, err := s.src.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return window(drinks, index, limit), nil
}

// LetterPage resolves a first-letter search and windows the result.
func (s *Service) LetterPage(ctx context.Context, letter string, index, limit int) (*Page, error) {
	drinks, err := s.src.SearchByLetter(ctx, letter)
	if err != nil {
		return nil, err
	}
	return window(drinks, index, limit), nil
}

// CategoryPage resolves a category filter and windows the result. Records
// carry reduced fields only (id, name, thumbnail).
func (s *Service) CategoryPage(ctx context.Context, category string, index, limit int) (*Page, error) {
	drinks, err := s.src.FilterByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return window(drinks, index, limit), nil
}

// Categories returns the upstream category list.
func (s *Service) Categories(ctx context.Context) ([]cocktails.Category, error) {
	return s.src.ListCategories(ctx)
}

// Drink returns one drink with detail fields, or nil when the id is unknown.
func (s *Service) Drink(ctx context.Context, id string) (*cocktails.Drink, error) {
	return s.src.LookupByID(ctx, id)
}

// Random returns one random drink.
func (s *Service) Random(ctx context.Context) (*cocktails.Drink, error) {
	return s.src.Random(ctx)
}

// Popular gathers the curated lookups in parallel and merges the first match
// of each in curated order. A name with no match is skipped; any lookup error
// fails the whole aggregation.
func (s *Service) Popular(ctx context.Context) ([]cocktails.Drink, error) {
	var results [len(popularNames)]*cocktails.Drink

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range popularNames {
		i, name := i, name
		g.Go(func() error {
			drinks, err := s.src.SearchByName(ctx, name)
			if err != nil {
				return err
			}
			if len(drinks) > 0 {
				results[i] = &drinks[0]
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]cocktails.Drink, 0, len(results))
	for _, d := range results {
		if d != nil {
			merged = append(merged, *d)
		}
	}
	return merged, nil
}

// window slices drinks to [index, index+limit). An index at or past the end
// yields an empty page with the total still reported, so a stale deep link
// degrades to "no results" rather than an error.
func window(drinks []cocktails.Drink, index, limit int) *Page {
	total := len(drinks)
	if index < 0 {
		index = 0
	}
	start := index
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &Page{
		Drinks:     drinks[start:end],
		TotalCount: total,
		HasMore:    end < total,
		StartIndex: start,
		EndIndex:   end,
	}
}
