package utils

import (
	"net/http"
	"strings"
)

// ClientIP derives the visitor address from the headers set by the reverse
// proxy: the first X-Forwarded-For hop, then X-Real-IP. Empty when neither is set.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	return strings.TrimSpace(r.Header.Get("X-Real-IP"))
}
