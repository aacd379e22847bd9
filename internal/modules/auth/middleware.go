package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/satriamaulana/bengkel-backend/internal/model"
)

type contextKey struct{}

var userKey contextKey

// CurrentUser resolves the session user from a Bearer token and puts
// it on the request context. Requests without a usable token pass
// through untouched; handlers that need a user check FromContext.
func CurrentUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			if u, err := ParseToken(token); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), userKey, u))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// FromContext returns the session user placed by CurrentUser.
func FromContext(ctx context.Context) (*model.User, bool) {
	u, ok := ctx.Value(userKey).(*model.User)
	return u, ok
}
