package handler

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
)

const negroniJSON = `{"drinks":[{
	"idDrink":"11003",
	"strDrink":"Negroni",
	"strCategory":"Ordinary Drink",
	"strAlcoholic":"Alcoholic",
	"strGlass":"Old-fashioned glass",
	"strInstructions":"Stir into glass over ice, garnish and serve.",
	"strDrinkThumb":"https://img.example/negroni.jpg",
	"strIngredient1":"Gin","strMeasure1":"1 oz",
	"strIngredient2":"Campari","strMeasure2":"1 oz",
	"strIngredient3":"Sweet Vermouth","strMeasure3":"1 oz"
}]}`

// detailUpstream serves one known drink and a null payload for everything else.
func detailUpstream(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/lookup.php" && r.URL.Query().Get("i") == "11003" {
			fmt.Fprint(w, negroniJSON)
			return
		}
		fmt.Fprint(w, `{"drinks":null}`)
	}
}

func TestDetail_ShowsDrink(t *testing.T) {
	env := newTestEnv(t, detailUpstream(t))

	w := env.get(t, "/drinks/11003")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	for _, want := range []string{"Negroni", "Campari", "1 oz", "Stir into glass"} {
		if !strings.Contains(body, want) {
			t.Errorf("detail page missing %q", want)
		}
	}
	if !strings.Contains(body, `action="/favorites"`) {
		t.Errorf("expected a save-to-favorites form")
	}
}

func TestDetail_UnknownDrinkIs404Page(t *testing.T) {
	env := newTestEnv(t, detailUpstream(t))

	w := env.get(t, "/drinks/99999")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}

	body := w.Body.String()
	if !strings.Contains(body, "99999") {
		t.Errorf("not-found page should name the missing id")
	}
	if !strings.Contains(body, "Back to browsing") {
		t.Errorf("not-found page should offer a way back")
	}
}

func TestDetail_UpstreamDownIs502Page(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	w := env.get(t, "/drinks/11003")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadGateway)
	}
	if !strings.Contains(w.Body.String(), "not responding") {
		t.Errorf("expected a friendly failure message")
	}
}
