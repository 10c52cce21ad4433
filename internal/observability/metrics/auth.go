package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AccessTokensIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "access_tokens_issued_total",
			Help: "Total number of access tokens issued",
		},
	)

	RefreshTokensIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "refresh_tokens_issued_total",
			Help: "Total number of refresh tokens issued",
		},
	)

	TokenVerificationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "token_verifications_total",
			Help: "Total number of token verifications",
		},
	)

	TokenVerificationsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "token_verifications_failed_total",
			Help: "Total number of failed token verifications",
		},
	)

	PasswordHashesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "password_hashes_created_total",
			Help: "Total number of password hashes created",
		},
	)

	UserLookupCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_lookup_cache_hits_total",
			Help: "Total number of user lookups served from cache",
		},
	)

	UserLookupCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_lookup_cache_misses_total",
			Help: "Total number of user lookups that missed the cache",
		},
	)
)
