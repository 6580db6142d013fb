package middleware

import (
	"context"
	"net/http"

	"github.com/saim-honey388/BAKERY-CHAT/internal/auth"
	"github.com/saim-honey388/BAKERY-CHAT/internal/logger"
)

type contextKey string

const SessionIDKey contextKey = "sessionID"

// SessionIDFromContext returns the authenticated session ID, if any.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionIDKey).(string)
	return id, ok && id != ""
}

// SessionMiddleware resolves the session token on the request. Requests
// without a token pass through anonymously; a present but invalid token
// is rejected.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := auth.ExtractAccessToken(r)
		if tokenStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := auth.ParseSessionToken(tokenStr)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), SessionIDKey, claims.SessionID)
		ctx = logger.WithSessionID(ctx, claims.SessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
