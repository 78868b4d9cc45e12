package handler

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestBrowse_DefaultListing(t *testing.T) {
	env := newTestEnv(t, defaultUpstream(t))

	w := env.get(t, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	if !strings.Contains(body, "d1") || !strings.Contains(body, "d10") {
		t.Errorf("first page should show drinks 1..10, got:\n%s", body)
	}
	if strings.Contains(body, ">d11<") {
		t.Errorf("first page should not show drink 11")
	}
	if !strings.Contains(body, `href="/?index=10"`) {
		t.Errorf("expected a next-page link to /?index=10")
	}
	if !strings.Contains(body, "Page 1 of 3") {
		t.Errorf("expected page indicator, got:\n%s", body)
	}
}

func TestBrowse_SecondPageHasPrevLink(t *testing.T) {
	env := newTestEnv(t, defaultUpstream(t))

	w := env.get(t, "/?index=10")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, ">d11<") {
		t.Errorf("second page should show drink 11")
	}
	if !strings.Contains(body, `class="page-prev" href="/"`) {
		t.Errorf("expected a prev-page link back to /")
	}
	if !strings.Contains(body, `href="/?index=20"`) {
		t.Errorf("expected a next-page link to /?index=20")
	}
}

func TestBrowse_SearchQueryReachesUpstream(t *testing.T) {
	var gotTerm string
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/list.php" {
			fmt.Fprint(w, `{"drinks":null}`)
			return
		}
		gotTerm = r.URL.Query().Get("s")
		fmt.Fprint(w, upstreamDrinks(3))
	})

	w := env.get(t, "/?q=margarita")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if gotTerm != "margarita" {
		t.Errorf("upstream search term = %q, want %q", gotTerm, "margarita")
	}
	if !strings.Contains(w.Body.String(), "Search: margarita") {
		t.Errorf("expected search title in page")
	}
}

func TestBrowse_BadLetterShowsErrorNotFetch(t *testing.T) {
	upstreamHits := 0
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/list.php" {
			fmt.Fprint(w, `{"drinks":null}`)
			return
		}
		upstreamHits++
		fmt.Fprint(w, upstreamDrinks(1))
	})

	w := env.get(t, "/?letter=ab")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with an error banner", w.Code)
	}
	if !strings.Contains(w.Body.String(), "flash-error") {
		t.Errorf("expected a visible error banner")
	}
	if upstreamHits != 0 {
		t.Errorf("invalid letter should not reach the drink endpoints, got %d hits", upstreamHits)
	}
}

func TestBrowse_UpstreamDownShowsFriendlyError(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	w := env.get(t, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with an error banner", w.Code)
	}
	if !strings.Contains(w.Body.String(), "not responding") {
		t.Errorf("expected a friendly failure message")
	}
}

func TestBrowse_CategoryChipsRendered(t *testing.T) {
	env := newTestEnv(t, defaultUpstream(t))

	w := env.get(t, "/")
	body := w.Body.String()
	if !strings.Contains(body, "Cocktail") || !strings.Contains(body, "Shot") {
		t.Errorf("expected category chips from the upstream list")
	}
	if !strings.Contains(body, "category=Shot") {
		t.Errorf("expected chip links carrying the category parameter")
	}
}
