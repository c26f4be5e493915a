package auth

import (
	"net/http"
	"strings"
)

// TokenFromRequest extracts the session token from an
// "Authorization: Bearer <token>" header. Returns "" when absent or malformed.
func TokenFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}
