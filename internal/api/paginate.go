package api

import (
	"net/http"
	"strconv"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// parseWindow extracts index and limit from query parameters. index defaults
// to 0 and never goes negative; limit defaults to 10 and is silently capped
// at 50. Malformed values fall back to the defaults.
func parseWindow(r *http.Request) (index, limit int) {
	limit = defaultLimit

	if v := r.URL.Query().Get("index"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			index = parsed
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return index, limit
}
