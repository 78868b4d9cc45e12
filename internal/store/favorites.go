package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Favorite represents a row in the favorites table: a drink the user pinned
// to their shelf, with enough denormalized fields to render the shelf without
// calling the upstream.
type Favorite struct {
	ID        string    `db:"id"`
	DrinkID   string    `db:"drink_id"`
	Name      string    `db:"name"`
	Thumbnail string    `db:"thumbnail"`
	Category  string    `db:"category"`
	Note      string    `db:"note"`
	CreatedAt time.Time `db:"created_at"`
}

// FavoriteStore is the sqlx-backed implementation of FavoriteStoreIface.
type FavoriteStore struct {
	db *sqlx.DB
}

func NewFavoriteStore(db *sqlx.DB) *FavoriteStore {
	return &FavoriteStore{db: db}
}

// Save inserts a favorite, or updates the note if the drink is already saved.
// Saving twice is not an error; the shelf has one entry per drink.
func (s *FavoriteStore) Save(ctx context.Context, f Favorite) (*Favorite, error) {
	f.ID = uuid.New().String()
	f.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO favorites (id, drink_id, name, thumbnail, category, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, f.ID, f.DrinkID, f.Name, f.Thumbnail, f.Category, f.Note, f.CreatedAt)
	if err != nil {
		if isUniqueConstraintError(err) {
			_, err = s.db.ExecContext(ctx, `UPDATE favorites SET note = ? WHERE drink_id = ?`, f.Note, f.DrinkID)
			if err != nil {
				return nil, err
			}
			return s.Get(ctx, f.DrinkID)
		}
		return nil, err
	}
	return s.Get(ctx, f.DrinkID)
}

// Get returns the favorite for a drink id, or ErrNotFound.
func (s *FavoriteStore) Get(ctx context.Context, drinkID string) (*Favorite, error) {
	var f Favorite
	err := s.db.GetContext(ctx, &f, `SELECT * FROM favorites WHERE drink_id = ?`, drinkID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// List returns all favorites, newest first.
func (s *FavoriteStore) List(ctx context.Context) ([]*Favorite, error) {
	favorites := []*Favorite{}
	err := s.db.SelectContext(ctx, &favorites, `SELECT * FROM favorites ORDER BY created_at DESC, id`)
	return favorites, err
}

// Delete removes a favorite by drink id. Deleting a drink that is not saved
// returns ErrNotFound.
func (s *FavoriteStore) Delete(ctx context.Context, drinkID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM favorites WHERE drink_id = ?`, drinkID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of saved favorites.
func (s *FavoriteStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM favorites`)
	return n, err
}

// isUniqueConstraintError checks whether err indicates a unique constraint
// violation. Works across SQLite, PostgreSQL, and MySQL.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || // SQLite & PostgreSQL
		strings.Contains(msg, "duplicate key") || // PostgreSQL
		strings.Contains(msg, "duplicate entry") // MySQL
}
