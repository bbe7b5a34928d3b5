package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// HeaderSessionID carries the client's session identifier
const HeaderSessionID = "X-Session-ID"

type contextKey string

const sessionIDKey contextKey = "sessionID"

// Session resolves the session id from the request header, issuing a new
// one when the client sends none, and echoes it back in the response so
// the client can persist it.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(HeaderSessionID)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		w.Header().Set(HeaderSessionID, sessionID)

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID extracts the session id placed in the context by Session
func SessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}
