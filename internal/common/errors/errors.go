package commonerrors

import "errors"

var (
	ErrMissingRequiredEnv    = errors.New("missing required environment variable")
	ErrInvalidJWTSecret      = errors.New("JWT_SECRET must be at least 32 bytes")
	ErrInvalidToken          = errors.New("token is not valid")
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrCacheMiss             = errors.New("cache miss")
	ErrCacheUnavailable      = errors.New("cache unavailable")
	ErrUnauthenticated       = errors.New("not authenticated")
	ErrInactiveUser          = errors.New("inactive user")
	ErrInsufficientPrivilege = errors.New("insufficient privileges")
)
