package handler

import (
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"

	"github.com/barcart/barcart/internal/session"
)

// putFlash stores a one-time message in the session, encoded "type|message".
func putFlash(r *http.Request, sm *scs.SessionManager, kind, message string) {
	sm.Put(r.Context(), session.FlashKey, kind+"|"+message)
}

// popFlash removes and returns the pending flash, if any.
func popFlash(r *http.Request, sm *scs.SessionManager) *Flash {
	raw := sm.PopString(r.Context(), session.FlashKey)
	if raw == "" {
		return nil
	}
	kind, message, ok := strings.Cut(raw, "|")
	if !ok {
		return &Flash{Type: "info", Message: raw}
	}
	return &Flash{Type: kind, Message: message}
}

// lastViewURL returns the URL of the last committed browse view, defaulting
// to the root listing.
func lastViewURL(r *http.Request, sm *scs.SessionManager) string {
	return "/" + sm.GetString(r.Context(), session.LastViewKey)
}
