// Package middleware carries the caller's identity from the gateway into the
// request context.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"unicode"

	"github.com/kabachok/lootcase/internal/logger"
)

// WithUserID adds user ID to request context. Loggers built from the
// returned context include it.
func WithUserID(ctx context.Context, userID string) context.Context {
	return logger.WithUserID(ctx, userID)
}

// GetUserID retrieves user ID from context
func GetUserID(ctx context.Context) string {
	return logger.GetUserID(ctx)
}

// RequireUser rejects requests without a usable X-User-ID header and stores
// the trimmed id in the request context for handlers downstream.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if userID == EmptyUserID {
			logger.FromContext(r.Context()).Warn(LogMsgMissingIdentity, "path", r.URL.Path)
			writeError(w, http.StatusUnauthorized, MsgMissingUserID)
			return
		}
		if !validUserID(userID) {
			logger.FromContext(r.Context()).Warn(LogMsgInvalidIdentity, "path", r.URL.Path, "length", len(userID))
			writeError(w, http.StatusBadRequest, MsgInvalidUserID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// ScopeByUser keys per-request state (idempotency records) by caller
func ScopeByUser(r *http.Request) string {
	return GetUserID(r.Context())
}

func validUserID(id string) bool {
	if len(id) > MaxUserIDLength {
		return false
	}
	for _, c := range id {
		if unicode.IsControl(c) {
			return false
		}
	}
	return true
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}
