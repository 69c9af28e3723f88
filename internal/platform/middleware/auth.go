package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	dErrors "folio/pkg/domain-errors"
	"folio/pkg/platform/httputil"
)

// TokenHeader is the exact header the existing SPAs send the signed token
// in. It predates this implementation and is preserved bit-for-bit for wire
// compatibility; the standard bearer scheme is deliberately not accepted.
const TokenHeader = "x-auth-token"

// TokenValidator validates a signed token and returns the caller identity.
type TokenValidator interface {
	ValidateToken(token string) (Identity, error)
}

// Identity is the decoded account identity attached to authenticated
// requests.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

type contextKeyIdentity struct{}

// GetIdentity retrieves the authenticated identity from the context. The
// second return is false on unauthenticated requests.
func GetIdentity(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKeyIdentity{}).(Identity)
	return id, ok
}

// WithIdentity injects an identity into a context. Useful for service tests
// that skip the HTTP middleware chain.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKeyIdentity{}, id)
}

// RequireAuth gates a route on a valid token in the x-auth-token header.
// Missing, malformed, expired and badly signed tokens all produce the same
// 401 response.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(TokenHeader)
			if token == "" {
				logger.WarnContext(r.Context(), "unauthorized access - missing token",
					"path", r.URL.Path,
					"request_id", GetRequestID(r.Context()),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "no token, authorization denied"))
				return
			}

			identity, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(r.Context(), "unauthorized access - invalid token",
					"error", err,
					"path", r.URL.Path,
					"request_id", GetRequestID(r.Context()),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "token is not valid"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}
