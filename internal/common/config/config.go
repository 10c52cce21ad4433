package config

import (
	"fmt"
	"os"
	"time"

	"github.com/akovalyov/authcore/internal/common/constants"
	commonerrors "github.com/akovalyov/authcore/internal/common/errors"
)

// Config is loaded once at startup and treated as immutable afterwards.
type Config struct {
	HTTPPort        string
	DatabaseURL     string
	RedisAddr       string
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	UserCacheTTL    time.Duration
	RequestTimeout  time.Duration
}

func Load() (Config, error) {
	jwtSecret, err := mustEnv("JWT_SECRET")
	if err != nil {
		return Config{}, err
	}

	if err := validateJWTSecret(jwtSecret); err != nil {
		return Config{}, err
	}

	databaseURL, err := mustEnv("DATABASE_URL")
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:        getEnv("HTTP_PORT", constants.DefaultHTTPPort),
		DatabaseURL:     databaseURL,
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		JWTSecret:       jwtSecret,
		AccessTokenTTL:  getDurationEnv("ACCESS_TOKEN_TTL", constants.DefaultAccessTokenTTL),
		RefreshTokenTTL: getDurationEnv("REFRESH_TOKEN_TTL", constants.DefaultRefreshTokenTTL),
		UserCacheTTL:    getDurationEnv("USER_CACHE_TTL", constants.UserCacheTTL),
		RequestTimeout:  getDurationEnv("REQUEST_TIMEOUT", 5*time.Second),
	}, nil
}

func validateJWTSecret(secret string) error {
	if len(secret) < constants.JWTSecretMinLength {
		return fmt.Errorf("%w: got %d bytes", commonerrors.ErrInvalidJWTSecret, len(secret))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", commonerrors.ErrMissingRequiredEnv, key)
	}
	return v, nil
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
