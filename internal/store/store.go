// Package store holds the sqlx-backed persistence layer. The only persistent
// entity in barcart is the favorites shelf; drink data itself always comes
// from the upstream API.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// FavoriteStoreIface exposes all favorites operations. Handlers never query
// the DB directly; all access goes through this interface.
type FavoriteStoreIface interface {
	Save(ctx context.Context, f Favorite) (*Favorite, error)
	Get(ctx context.Context, drinkID string) (*Favorite, error)
	List(ctx context.Context) ([]*Favorite, error)
	Delete(ctx context.Context, drinkID string) error
	Count(ctx context.Context) (int64, error)
}
