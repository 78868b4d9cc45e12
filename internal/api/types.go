package api

import "github.com/barcart/barcart/internal/cocktails"

// Pagination is the metadata block attached to windowed list responses.
type Pagination struct {
	HasMore     bool `json:"hasMore"`
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	PageSize    int  `json:"pageSize"`
	StartIndex  int  `json:"startIndex"`
	EndIndex    int  `json:"endIndex"` // exclusive
}

// DrinkListResponse is the envelope for list endpoints. Aggregation endpoints
// (popular, random) return the drinks array alone, without pagination.
type DrinkListResponse struct {
	Drinks     []cocktails.Drink `json:"drinks"`
	TotalCount *int              `json:"totalCount,omitempty"`
	Pagination *Pagination       `json:"pagination,omitempty"`
}

// DrinkResponse is the envelope for single-drink lookups. Drink is null when
// the id is unknown; that is a successful negative result, not an error.
type DrinkResponse struct {
	Drink *cocktails.Drink `json:"drink"`
}

// CategoryListResponse is the envelope for the category list.
type CategoryListResponse struct {
	Categories []cocktails.Category `json:"categories"`
}
