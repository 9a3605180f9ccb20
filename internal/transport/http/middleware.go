package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
)

type ctxKey int

const profileKey ctxKey = iota

// ProfileFrom returns the authenticated user's profile from the request
// context, when the request passed the auth middleware.
func ProfileFrom(ctx context.Context) (domain.UserProfile, bool) {
	p, ok := ctx.Value(profileKey).(domain.UserProfile)
	return p, ok
}

// Authenticate verifies the bearer token and loads the caller's profile into
// the request context. Requests without a valid token get 401.
func (h *Handlers) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			errorResp(w, http.StatusUnauthorized, "UNAUTHORIZED", "bearer token required")
			return
		}
		userID, err := h.Tokens.VerifySubject(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			errorResp(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token")
			return
		}
		profile, err := h.Repo.GetProfile(r.Context(), userID)
		if err != nil {
			errorResp(w, http.StatusUnauthorized, "UNAUTHORIZED", "unknown user")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), profileKey, profile)))
	})
}

// require gates a handler to the listed roles. Admin always passes.
func (h *Handlers) require(next http.HandlerFunc, roles ...domain.UserRole) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := ProfileFrom(r.Context())
		if !ok {
			errorResp(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
			return
		}
		if p.IsAdmin() {
			next(w, r)
			return
		}
		for _, role := range roles {
			if p.Role == role {
				next(w, r)
				return
			}
		}
		errorResp(w, http.StatusForbidden, "FORBIDDEN", "insufficient role")
	}
}
