package token

import (
	"github.com/akovalyov/authcore/internal/observability/metrics"
)

func incrementAccessTokensIssued() {
	metrics.AccessTokensIssued.Inc()
}

func incrementRefreshTokensIssued() {
	metrics.RefreshTokensIssued.Inc()
}

func incrementTokenVerifications() {
	metrics.TokenVerificationsTotal.Inc()
}

func incrementTokenVerificationsFailed() {
	metrics.TokenVerificationsFailed.Inc()
}
