package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_PropagatesExistingID(t *testing.T) {
	var captured string
	handler := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = SessionID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session/draft", nil)
	req.Header.Set(HeaderSessionID, "sess-42")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, "sess-42", captured)
	assert.Equal(t, "sess-42", rec.Header().Get(HeaderSessionID))
}

func TestSession_IssuesIDWhenAbsent(t *testing.T) {
	var captured string
	handler := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = SessionID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session/cart", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.NotEmpty(t, captured)
	_, err := uuid.Parse(captured)
	assert.NoError(t, err, "issued session id must be a uuid")
	assert.Equal(t, captured, rec.Header().Get(HeaderSessionID))
}

func TestSessionID_EmptyWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Empty(t, SessionID(req.Context()))
}
