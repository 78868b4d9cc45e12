package browse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/barcart/barcart/internal/cocktails"
)

// PageResult is the outcome of resolving one ViewQuery. Drinks keep the
// upstream order; they are never re-sorted here.
type PageResult struct {
	Drinks     []cocktails.Drink
	TotalCount int
	TotalKnown bool
	HasMore    bool

	// Generation tags which view issued the fetch; the controller uses it
	// to discard results that a newer view has superseded.
	Generation uint64
}

// Fetcher resolves views and detail lookups. Implementations must be safe
// for concurrent use; the controller issues overlapping calls.
type Fetcher interface {
	// Resolve maps one ViewQuery to one page. Malformed queries (letter not
	// exactly one character) fail with *ValidationError before any I/O;
	// transport and upstream failures surface as *FetchError.
	Resolve(ctx context.Context, q ViewQuery) (*PageResult, error)

	// Lookup fetches one drink's detail record. An id the API does not know
	// fails with *NotFoundError carrying the id.
	Lookup(ctx context.Context, id string) (*cocktails.Drink, error)
}

// validateLetter enforces the single-character contract shared by every
// fetcher implementation, rejecting before any network or upstream call.
func validateLetter(letter string) error {
	if utf8.RuneCountInString(letter) != 1 {
		return &ValidationError{Field: "letter", Reason: "must be exactly one character"}
	}
	return nil
}

// inferHasMore is the fallback when a response carries no pagination block:
// a page that came back exactly full is assumed to have more. This cannot
// distinguish "exactly full, nothing after" from "full, more exist" without
// a total count; that imprecision is part of the contract.
func inferHasMore(got, limit int) bool {
	return got == limit && limit > 0
}

// Client is the HTTP Fetcher against the proxy API, for embedding the browse
// engine outside the server process.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client for a proxy API base URL, e.g.
// "http://localhost:8080/api/v1".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{baseURL: baseURL, client: &http.Client{Timeout: timeout}}
}

// envelope is the tagged union of the three response shapes the API returns:
// a bare drinks array, drinks plus a pagination block without a total, or
// the full block with totalCount. It is normalized here and never leaks.
type envelope struct {
	Drinks     []cocktails.Drink `json:"drinks"`
	TotalCount *int              `json:"totalCount"`
	Pagination *struct {
		HasMore bool `json:"hasMore"`
	} `json:"pagination"`
}

func (c *Client) Resolve(ctx context.Context, q ViewQuery) (*PageResult, error) {
	var path string
	params := url.Values{}

	switch q.Mode() {
	case ModeLetter:
		if err := validateLetter(q.Letter); err != nil {
			return nil, err
		}
		path = "/search/letter"
		params.Set("firstLetter", q.Letter)
	case ModeCategory:
		path = "/filter/" + url.PathEscape(q.Category)
	case ModeSearch:
		path = "/search"
		params.Set("query", q.Search)
	default:
		path = "/search"
		params.Set("query", "")
	}
	params.Set("index", fmt.Sprintf("%d", q.Index))
	params.Set("limit", fmt.Sprintf("%d", q.Limit))

	body, err := c.get(ctx, path+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &FetchError{Message: "malformed response: " + err.Error()}
	}
	return normalize(&env, q.Limit), nil
}

func (c *Client) Lookup(ctx context.Context, id string) (*cocktails.Drink, error) {
	body, err := c.get(ctx, "/cocktail/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	var resp struct {
		Drink *cocktails.Drink `json:"drink"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &FetchError{Message: "malformed response: " + err.Error()}
	}
	if resp.Drink == nil {
		return nil, &NotFoundError{ID: id}
	}
	return resp.Drink, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &FetchError{Message: err.Error()}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &FetchError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Status: resp.StatusCode, Message: err.Error()}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Status: resp.StatusCode, Message: errorMessage(body)}
	}
	return body, nil
}

// normalize folds the three envelope shapes into one PageResult.
func normalize(env *envelope, limit int) *PageResult {
	r := &PageResult{Drinks: env.Drinks}
	if env.TotalCount != nil {
		r.TotalCount = *env.TotalCount
		r.TotalKnown = true
	}
	if env.Pagination != nil {
		r.HasMore = env.Pagination.HasMore
	} else {
		r.HasMore = inferHasMore(len(env.Drinks), limit)
	}
	return r
}

// errorMessage pulls the message out of an {error, code} body, falling back
// to the raw body.
func errorMessage(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return e.Error
	}
	return string(body)
}
