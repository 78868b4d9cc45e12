// Package upstream is the HTTP client for the third-party cocktail API.
// It is the only place that sees the upstream's ad-hoc field names
// (idDrink, strDrink, strIngredient1..15); everything past this boundary
// works with cocktails.Drink.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/barcart/barcart/internal/cocktails"
	"github.com/barcart/barcart/internal/metrics"
)

// Client talks to a TheCocktailDB-compatible JSON API.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a Client for the given base URL, e.g.
// "https://www.thecocktaildb.com/api/json/v1/1". The timeout bounds every
// round trip; a hung upstream surfaces as an error instead of blocking forever.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// SearchByName returns all drinks whose name contains name. The upstream
// returns the full, unpaginated match list; windowing happens downstream.
func (c *Client) SearchByName(ctx context.Context, name string) ([]cocktails.Drink, error) {
	return c.fetchDrinks(ctx, "search", url.Values{"s": {name}})
}

// SearchByLetter returns all drinks whose name starts with the given letter.
// The caller is responsible for passing exactly one character.
func (c *Client) SearchByLetter(ctx context.Context, letter string) ([]cocktails.Drink, error) {
	return c.fetchDrinks(ctx, "search", url.Values{"f": {letter}})
}

// FilterByCategory returns reduced records (id, name, thumbnail) for every
// drink in the category.
func (c *Client) FilterByCategory(ctx context.Context, category string) ([]cocktails.Drink, error) {
	return c.fetchDrinks(ctx, "filter", url.Values{"c": {category}})
}

// LookupByID fetches one drink with all detail fields. A missing id is not an
// error: the upstream answers {"drinks": null} and LookupByID returns nil, nil.
func (c *Client) LookupByID(ctx context.Context, id string) (*cocktails.Drink, error) {
	drinks, err := c.fetchDrinks(ctx, "lookup", url.Values{"i": {id}})
	if err != nil {
		return nil, err
	}
	if len(drinks) == 0 {
		return nil, nil
	}
	return &drinks[0], nil
}

// Random fetches one random drink with all detail fields.
func (c *Client) Random(ctx context.Context) (*cocktails.Drink, error) {
	drinks, err := c.fetchDrinks(ctx, "random", nil)
	if err != nil {
		return nil, err
	}
	if len(drinks) == 0 {
		return nil, fmt.Errorf("upstream random returned no drink")
	}
	return &drinks[0], nil
}

// ListCategories returns all drink categories.
func (c *Client) ListCategories(ctx context.Context) ([]cocktails.Category, error) {
	body, err := c.get(ctx, "list", url.Values{"c": {"list"}})
	if err != nil {
		return nil, err
	}

	var env struct {
		Drinks []struct {
			Name string `json:"strCategory"`
		} `json:"drinks"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	cats := make([]cocktails.Category, 0, len(env.Drinks))
	for _, d := range env.Drinks {
		if d.Name != "" {
			cats = append(cats, cocktails.Category{Name: d.Name})
		}
	}
	return cats, nil
}

// fetchDrinks calls an endpoint returning the {"drinks": [...]} envelope and
// reshapes each record. A null drinks array means "no matches", not an error.
func (c *Client) fetchDrinks(ctx context.Context, endpoint string, params url.Values) ([]cocktails.Drink, error) {
	body, err := c.get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var env struct {
		Drinks []rawDrink `json:"drinks"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", endpoint, err)
	}

	drinks := make([]cocktails.Drink, 0, len(env.Drinks))
	for _, raw := range env.Drinks {
		drinks = append(drinks, raw.reshape())
	}
	return drinks, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	u := c.baseURL + "/" + endpoint + ".php"
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	metrics.UpstreamRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("upstream %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, resp.Status).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream %s returned %d", endpoint, resp.StatusCode)
	}
	return body, nil
}
