package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"blogql/internal/service"
)

type contextKey string

const identityKey contextKey = "identity"

type Middleware func(http.Handler) http.Handler

// Identity parses the Bearer token and attaches the resulting identity to
// the request context. A missing or invalid token attaches an empty
// identity and lets the request through; resolvers enforce authentication.
func Identity(auth service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var identity service.Identity

			authHeader := r.Header.Get("Authorization")
			if token, found := strings.CutPrefix(authHeader, "Bearer "); found && token != "" {
				if id, err := auth.ParseToken(token); err == nil {
					identity = id
				}
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext extracts the request identity; the zero value means
// the caller is not authenticated.
func IdentityFromContext(ctx context.Context) service.Identity {
	identity, _ := ctx.Value(identityKey).(service.Identity)
	return identity
}

// WithIdentity returns a context carrying the given identity.
func WithIdentity(ctx context.Context, identity service.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, PATCH, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s %s", r.Method, r.RequestURI, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
