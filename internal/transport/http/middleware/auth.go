package middleware

import (
	"context"
	"net/http"

	"warbler/internal/domain"
	"warbler/internal/repository"
	"warbler/internal/session"
)

type contextKey string

const userKey contextKey = "current_user"

// CurrentUser resolves the session cookie to a *domain.User and stores it in
// the request context. A missing cookie, an unparseable id, or an id whose
// user has since been deleted all leave the request anonymous; the handler
// decides what anonymous is allowed to do.
func CurrentUser(sm *session.Manager, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := sm.CurrentUserID(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetByID(r.Context(), id)
			if err != nil || user == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom returns the authenticated user from the context, or nil for an
// anonymous request.
func UserFrom(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userKey).(*domain.User)
	return user
}
