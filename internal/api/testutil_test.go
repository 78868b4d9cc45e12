package api_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/barcart/barcart/internal/api"
	"github.com/barcart/barcart/internal/catalog"
	"github.com/barcart/barcart/internal/upstream"
)

// testEnv wires a fake upstream server through a real client and catalog to
// the full API router.
type testEnv struct {
	Router http.Handler
}

// drinksJSON renders n upstream-shaped drink records.
func drinksJSON(n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{"idDrink":"%d","strDrink":"Drink %d","strCategory":"Ordinary Drink","strDrinkThumb":"https://example.com/%d.jpg"}`, i, i, i)
	}
	return `{"drinks":[` + strings.Join(items, ",") + `]}`
}

// newTestEnv serves canned upstream bodies keyed by upstream path
// ("/search.php", "/lookup.php", ...) behind the real proxy stack.
func newTestEnv(t *testing.T, routes map[string]string) *testEnv {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.Error(w, "unexpected upstream call: "+r.URL.Path, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	cat := catalog.New(upstream.New(srv.URL, 5*time.Second))
	return &testEnv{Router: api.NewAPIRouter(api.Deps{Catalog: cat})}
}

// get performs a GET against the router and returns the recorder.
func (env *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}
