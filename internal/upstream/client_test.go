package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const margaritaJSON = `{"drinks":[{
	"idDrink":"11007",
	"strDrink":"Margarita",
	"strCategory":"Ordinary Drink",
	"strAlcoholic":"Alcoholic",
	"strGlass":"Cocktail glass",
	"strInstructions":"Rub the rim of the glass with the lime slice.",
	"strDrinkThumb":"https://example.com/margarita.jpg",
	"strTags":"IBA,ContemporaryClassic",
	"strIBA":"Contemporary Classics",
	"strVideo":null,
	"strIngredient1":"Tequila",
	"strIngredient2":"Triple sec",
	"strIngredient3":"Lime juice",
	"strIngredient4":"Salt",
	"strIngredient5":"",
	"strIngredient6":null,
	"strMeasure1":"1 1\/2 oz ",
	"strMeasure2":"1\/2 oz ",
	"strMeasure3":"1 oz ",
	"strMeasure4":null,
	"strMeasure5":null
}]}`

func newFakeUpstream(t *testing.T, routes map[string]string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second)
}

func TestSearchByName_Reshape(t *testing.T) {
	c := newFakeUpstream(t, map[string]string{"/search.php": margaritaJSON})

	drinks, err := c.SearchByName(context.Background(), "margarita")
	if err != nil {
		t.Fatalf("SearchByName: %v", err)
	}
	if len(drinks) != 1 {
		t.Fatalf("len(drinks) = %d, want 1", len(drinks))
	}

	d := drinks[0]
	if d.ID != "11007" {
		t.Errorf("ID = %q, want %q", d.ID, "11007")
	}
	if d.Name != "Margarita" {
		t.Errorf("Name = %q, want %q", d.Name, "Margarita")
	}
	if d.Category != "Ordinary Drink" {
		t.Errorf("Category = %q, want %q", d.Category, "Ordinary Drink")
	}

	// Numbered columns collapse to pairs with empty/null tails dropped.
	if len(d.Ingredients) != 4 {
		t.Fatalf("len(Ingredients) = %d, want 4", len(d.Ingredients))
	}
	if d.Ingredients[0].Name != "Tequila" || d.Ingredients[0].Measure != "1 1/2 oz" {
		t.Errorf("Ingredients[0] = %+v, want Tequila / 1 1/2 oz", d.Ingredients[0])
	}
	if d.Ingredients[3].Name != "Salt" || d.Ingredients[3].Measure != "" {
		t.Errorf("Ingredients[3] = %+v, want Salt with no measure", d.Ingredients[3])
	}

	if len(d.Tags) != 2 || d.Tags[0] != "IBA" || d.Tags[1] != "ContemporaryClassic" {
		t.Errorf("Tags = %v, want [IBA ContemporaryClassic]", d.Tags)
	}
	if d.VideoURL != "" {
		t.Errorf("VideoURL = %q, want empty for null column", d.VideoURL)
	}
}

func TestSearchByName_NullDrinks(t *testing.T) {
	c := newFakeUpstream(t, map[string]string{"/search.php": `{"drinks":null}`})

	drinks, err := c.SearchByName(context.Background(), "xyzzy")
	if err != nil {
		t.Fatalf("SearchByName: %v", err)
	}
	if len(drinks) != 0 {
		t.Errorf("len(drinks) = %d, want 0 for null drinks", len(drinks))
	}
}

func TestLookupByID_Missing(t *testing.T) {
	c := newFakeUpstream(t, map[string]string{"/lookup.php": `{"drinks":null}`})

	d, err := c.LookupByID(context.Background(), "99999")
	if err != nil {
		t.Fatalf("LookupByID: %v", err)
	}
	if d != nil {
		t.Errorf("drink = %+v, want nil for missing id", d)
	}
}

func TestGet_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()
	c := New(srv.URL, 5*time.Second)

	if _, err := c.SearchByName(context.Background(), "margarita"); err == nil {
		t.Fatal("expected error for upstream 500, got nil")
	}
}

func TestListCategories(t *testing.T) {
	c := newFakeUpstream(t, map[string]string{
		"/list.php": `{"drinks":[{"strCategory":"Ordinary Drink"},{"strCategory":"Cocktail"},{"strCategory":"Shot"}]}`,
	})

	cats, err := c.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(cats) != 3 {
		t.Fatalf("len(cats) = %d, want 3", len(cats))
	}
	if cats[1].Name != "Cocktail" {
		t.Errorf("cats[1] = %q, want %q", cats[1].Name, "Cocktail")
	}
}
