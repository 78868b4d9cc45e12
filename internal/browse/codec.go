package browse

import (
	"net/url"
	"strconv"
)

// Codec maps a ViewQuery to and from its URL query-string form. The URL is
// the only place view state persists, so Encode and Decode must round-trip
// every query the transitions can produce.
type Codec struct {
	// DefaultLimit is the page size used when the URL carries none; it is
	// also omitted from encoded URLs to keep them clean.
	DefaultLimit int
}

const (
	paramSearch   = "q"
	paramLetter   = "letter"
	paramCategory = "category"
	paramIndex    = "index"
	paramLimit    = "limit"
)

// Encode emits only non-default parameters: discriminators only when active
// (clearing the search removes q entirely rather than emitting q=), index
// only when non-zero, limit only when it differs from the default.
func (c Codec) Encode(q ViewQuery) url.Values {
	v := url.Values{}
	switch q.Mode() {
	case ModeLetter:
		v.Set(paramLetter, q.Letter)
	case ModeCategory:
		v.Set(paramCategory, q.Category)
	case ModeSearch:
		v.Set(paramSearch, q.Search)
	}
	if q.Index != 0 {
		v.Set(paramIndex, strconv.Itoa(q.Index))
	}
	if q.Limit != c.DefaultLimit {
		v.Set(paramLimit, strconv.Itoa(q.Limit))
	}
	return v
}

// EncodeString returns the encoded query as a string suitable for an href,
// e.g. "?q=margarita&index=10", or "" when every value is default.
func (c Codec) EncodeString(q ViewQuery) string {
	v := c.Encode(q)
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// Decode is total: any input yields a valid ViewQuery. Unrecognized or
// malformed values fall back to defaults, a negative index clamps to zero,
// and when several discriminators appear only the highest-priority one is
// kept (letter over category over free text), matching fetch priority.
func (c Codec) Decode(v url.Values) ViewQuery {
	q := NewViewQuery(c.DefaultLimit)

	if limit, err := strconv.Atoi(v.Get(paramLimit)); err == nil && limit > 0 {
		q.Limit = limit
	}
	if index, err := strconv.Atoi(v.Get(paramIndex)); err == nil && index > 0 {
		q.Index = index
	}

	switch {
	case v.Get(paramLetter) != "":
		q.Letter = v.Get(paramLetter)
	case v.Get(paramCategory) != "":
		q.Category = v.Get(paramCategory)
	default:
		q = q.withDecodedSearch(v.Get(paramSearch))
	}
	return q
}

// DecodeString decodes a raw query string ("q=gin&index=10", with or without
// a leading "?"). Unparseable input yields the default view.
func (c Codec) DecodeString(raw string) ViewQuery {
	if len(raw) > 0 && raw[0] == '?' {
		raw = raw[1:]
	}
	v, err := url.ParseQuery(raw)
	if err != nil {
		return NewViewQuery(c.DefaultLimit)
	}
	return c.Decode(v)
}

// withDecodedSearch applies a decoded q parameter without resetting the
// index: an incoming URL legitimately carries both a search term and an
// offset, unlike a fresh search submission.
func (q ViewQuery) withDecodedSearch(text string) ViewQuery {
	index := q.Index
	q = q.WithSearch(text)
	q.Index = index
	return q
}
