package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/akovalyov/authcore/internal/auth/identity"
	commonhttp "github.com/akovalyov/authcore/internal/common/http"
	"github.com/akovalyov/authcore/internal/common/logger"
	userdomain "github.com/akovalyov/authcore/internal/user/domain"
)

type contextKey string

const userKey contextKey = "authenticated_user"

// RequireUser authenticates the request with the resolver's active-user
// stage and stores the user in the request context. RequireSuperuser
// additionally enforces the privilege stage.
func RequireUser(resolver *identity.Resolver, log *logger.Logger) func(next http.Handler) http.Handler {
	return middleware(resolver.ActiveUser, log)
}

func RequireSuperuser(resolver *identity.Resolver, log *logger.Logger) func(next http.Handler) http.Handler {
	return middleware(resolver.Superuser, log)
}

func middleware(
	resolve func(ctx context.Context, rawToken string) (userdomain.User, error),
	log *logger.Logger,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("Authorization")
			if raw == "" || !strings.HasPrefix(raw, "Bearer ") {
				log.Warnf("auth failed path=%s: missing or invalid authorization header", r.URL.Path)
				commonhttp.WriteErrorCode(w, http.StatusUnauthorized, commonhttp.CodeMissingAuthorization, "missing or invalid authorization")
				return
			}

			user, err := resolve(r.Context(), strings.TrimPrefix(raw, "Bearer "))
			if err != nil {
				log.Warnf("auth failed path=%s: %v", r.URL.Path, err)
				status, code := statusFor(err)
				commonhttp.WriteErrorCode(w, status, code, err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, identity.ErrInactiveUser):
		return http.StatusForbidden, commonhttp.CodeInactiveUser
	case errors.Is(err, identity.ErrInsufficientPrivilege):
		return http.StatusForbidden, commonhttp.CodeForbidden
	default:
		return http.StatusUnauthorized, commonhttp.CodeInvalidToken
	}
}

func UserFromContext(ctx context.Context) (userdomain.User, bool) {
	user, ok := ctx.Value(userKey).(userdomain.User)
	return user, ok
}
