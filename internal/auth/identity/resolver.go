package identity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/akovalyov/authcore/internal/auth/token"
	"github.com/akovalyov/authcore/internal/cache"
	commonerrors "github.com/akovalyov/authcore/internal/common/errors"
	"github.com/akovalyov/authcore/internal/common/logger"
	"github.com/akovalyov/authcore/internal/observability/metrics"
	userdomain "github.com/akovalyov/authcore/internal/user/domain"
)

var (
	ErrUnauthenticated       = commonerrors.ErrUnauthenticated
	ErrInactiveUser          = commonerrors.ErrInactiveUser
	ErrInsufficientPrivilege = commonerrors.ErrInsufficientPrivilege
)

// Lookup is the externally supplied user-lookup capability the
// resolver authenticates against.
type Lookup interface {
	FindByID(ctx context.Context, id userdomain.ID) (userdomain.User, error)
}

// Resolver maps a raw bearer token to a user record, one check per
// stage: token validity, user existence, active flag, superuser flag.
// Each stage short-circuits with its own failure reason.
type Resolver struct {
	tokens   *token.Service
	users    Lookup
	cache    cache.Cache
	cacheTTL time.Duration
	log      *logger.Logger
}

func NewResolver(tokens *token.Service, users Lookup, log *logger.Logger) *Resolver {
	return &Resolver{
		tokens: tokens,
		users:  users,
		log:    log,
	}
}

// WithUserCache adds a short-lived cache in front of the user lookup.
func (r *Resolver) WithUserCache(c cache.Cache, ttl time.Duration) *Resolver {
	r.cache = c
	r.cacheTTL = ttl
	return r
}

// CurrentUser verifies an access token and resolves its subject to a
// user. Invalid tokens, refresh tokens presented as access tokens and
// unknown subjects all fail with ErrUnauthenticated.
func (r *Resolver) CurrentUser(ctx context.Context, rawToken string) (userdomain.User, error) {
	claims, err := r.tokens.Decode(rawToken)
	if err != nil {
		return userdomain.User{}, ErrUnauthenticated
	}

	if claims.TokenType != token.TypeAccess {
		r.log.WithFields(ctx, logger.Fields{
			"token_type": string(claims.TokenType),
			"action":     "current_user_wrong_token_type",
		}).Warn("authentication failed: non-access token presented")
		return userdomain.User{}, ErrUnauthenticated
	}

	user, err := r.lookupUser(ctx, userdomain.ID(claims.Subject))
	if err != nil {
		r.log.WithFields(ctx, logger.Fields{
			"subject": claims.Subject,
			"action":  "current_user_lookup_failed",
		}).Warnf("authentication failed: %v", err)
		return userdomain.User{}, ErrUnauthenticated
	}

	return user, nil
}

// ActiveUser is CurrentUser plus the active check.
func (r *Resolver) ActiveUser(ctx context.Context, rawToken string) (userdomain.User, error) {
	user, err := r.CurrentUser(ctx, rawToken)
	if err != nil {
		return userdomain.User{}, err
	}

	if !user.IsActive {
		r.log.WithFields(ctx, logger.Fields{
			"user_id": string(user.ID),
			"action":  "active_user_inactive",
		}).Warn("authentication failed: inactive user")
		return userdomain.User{}, ErrInactiveUser
	}

	return user, nil
}

// Superuser is ActiveUser plus the privilege check.
func (r *Resolver) Superuser(ctx context.Context, rawToken string) (userdomain.User, error) {
	user, err := r.ActiveUser(ctx, rawToken)
	if err != nil {
		return userdomain.User{}, err
	}

	if !user.IsSuperuser {
		r.log.WithFields(ctx, logger.Fields{
			"user_id": string(user.ID),
			"action":  "superuser_denied",
		}).Warn("authorization failed: insufficient privileges")
		return userdomain.User{}, ErrInsufficientPrivilege
	}

	return user, nil
}

func (r *Resolver) lookupUser(ctx context.Context, id userdomain.ID) (userdomain.User, error) {
	if r.cache == nil {
		return r.users.FindByID(ctx, id)
	}

	key := "user:" + string(id)

	if data, err := r.cache.Get(ctx, key); err == nil {
		var user userdomain.User
		if err := json.Unmarshal(data, &user); err == nil {
			metrics.UserLookupCacheHits.Inc()
			return user, nil
		}
	}
	metrics.UserLookupCacheMisses.Inc()

	user, err := r.users.FindByID(ctx, id)
	if err != nil {
		return userdomain.User{}, err
	}

	if data, err := json.Marshal(user); err == nil {
		if err := r.cache.Set(ctx, key, data, r.cacheTTL); err != nil {
			r.log.WithFields(ctx, logger.Fields{
				"user_id": string(id),
				"action":  "user_cache_set_failed",
			}).Warnf("failed to cache user: %v", err)
		}
	}

	return user, nil
}
