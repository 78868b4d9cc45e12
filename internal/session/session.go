// Package session configures server-side sessions. barcart has no user
// accounts; sessions carry flash messages and the last committed browse view,
// so a detail page can link back to exactly where the user was.
package session

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/mysqlstore"
	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/jmoiron/sqlx"
)

const (
	// LastViewKey holds the encoded query string of the last committed
	// browse view.
	LastViewKey = "last_view"

	// FlashKey holds a one-time notification message.
	FlashKey = "flash"
)

// NewManager creates an SCS session manager backed by the application DB.
// The driver parameter selects the appropriate store: "mysql", "postgres",
// or "sqlite3" (default).
func NewManager(db *sqlx.DB, driver string, lifetime time.Duration) *scs.SessionManager {
	sm := scs.New()
	switch driver {
	case "mysql":
		sm.Store = mysqlstore.New(db.DB)
	case "postgres":
		sm.Store = postgresstore.New(db.DB)
	default: // sqlite3
		sm.Store = sqlite3store.New(db.DB)
	}
	sm.Lifetime = lifetime
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	return sm
}
