package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/barcart/barcart/internal/browse"
	"github.com/barcart/barcart/internal/catalog"
	"github.com/barcart/barcart/internal/session"
	"github.com/barcart/barcart/internal/store"
	"github.com/barcart/barcart/internal/testutil"
	"github.com/barcart/barcart/internal/upstream"
)

// testEnv wires the full router against a fake upstream and an in-memory
// SQLite database with all migrations applied.
type testEnv struct {
	router    http.Handler
	favorites *store.FavoriteStore
}

// upstreamDrinks builds n TheCocktailDB-shaped records named d1..dn.
func upstreamDrinks(n int) string {
	type raw struct {
		ID    string `json:"idDrink"`
		Name  string `json:"strDrink"`
		Cat   string `json:"strCategory"`
		Thumb string `json:"strDrinkThumb"`
	}
	out := make([]raw, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, raw{
			ID:    fmt.Sprintf("%d", 11000+i),
			Name:  fmt.Sprintf("d%d", i),
			Cat:   "Cocktail",
			Thumb: fmt.Sprintf("https://img.example/d%d.jpg", i),
		})
	}
	b, _ := json.Marshal(map[string]any{"drinks": out})
	return string(b)
}

// newTestEnv starts a fake upstream and assembles the router the way serve
// does. The handler func sees raw TheCocktailDB requests (search.php etc).
func newTestEnv(t *testing.T, fakeUpstream http.HandlerFunc) *testEnv {
	t.Helper()

	srv := httptest.NewServer(fakeUpstream)
	t.Cleanup(srv.Close)

	db := testutil.NewTestDB(t)
	favs := store.NewFavoriteStore(db)
	sessions := session.NewManager(db, "sqlite3", time.Hour)

	client := upstream.New(srv.URL, 5*time.Second)
	cat := catalog.New(client)

	router := NewRouter(Deps{
		SessionManager: sessions,
		Catalog:        cat,
		Fetcher:        browse.NewLocalFetcher(cat),
		FavoriteStore:  favs,
		PageSize:       10,
	})

	return &testEnv{router: router, favorites: favs}
}

// get issues a GET through the full middleware stack.
func (e *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// defaultUpstream answers every endpoint with a fixed 25-drink list and an
// empty category list.
func defaultUpstream(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/list.php" {
			fmt.Fprint(w, `{"drinks":[{"strCategory":"Cocktail"},{"strCategory":"Shot"}]}`)
			return
		}
		fmt.Fprint(w, upstreamDrinks(25))
	}
}
