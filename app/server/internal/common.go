// Package internal provides shared utilities for server subpackages.
package internal

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ScreenID extracts the {id} path value and checks it is a well-formed screen id.
func ScreenID(r *http.Request) (string, bool) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
