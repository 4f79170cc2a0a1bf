package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/JoseAngelVirgenEslava/proyecto/internal/session"
)

type contextKey string

const userContextKey contextKey = "current_user"

// Session middleware resolves the bearer token from the Authorization header
// into an optional identity on the request context. Requests without a valid
// token pass through anonymously; no endpoint of the storefront core requires
// a login.
func Session(store *session.Store) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token != "" {
				if identity, ok := store.Resolve(token); ok {
					ctx := context.WithValue(r.Context(), userContextKey, identity)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CurrentUser returns the identity attached to the request, if any.
func CurrentUser(ctx context.Context) (session.Identity, bool) {
	identity, ok := ctx.Value(userContextKey).(session.Identity)
	return identity, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
