package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/akovalyov/authcore/internal/common/clock"
	"github.com/akovalyov/authcore/internal/common/constants"
	commoncrypto "github.com/akovalyov/authcore/internal/common/crypto"
	commonerrors "github.com/akovalyov/authcore/internal/common/errors"
)

// Type is the token type tag carried in the "type" claim.
type Type string

const (
	TypeAccess  Type = "access"
	TypeRefresh Type = "refresh"
)

// Claims is the decoded payload of a verified token.
type Claims struct {
	Subject   string
	TokenType Type
	JTI       string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Service issues and verifies signed bearer tokens. All configuration
// is fixed at construction; every method is safe for concurrent use.
type Service struct {
	secret      []byte
	idGenerator commoncrypto.IDGenerator
	clock       clock.Clock
	accessTTL   time.Duration
	refreshTTL  time.Duration
}

func NewService(
	secret string,
	idGenerator commoncrypto.IDGenerator,
	accessTTL time.Duration,
	refreshTTL time.Duration,
	clk clock.Clock,
) (*Service, error) {
	if len(secret) < constants.JWTSecretMinLength {
		return nil, fmt.Errorf("%w: got %d bytes", commonerrors.ErrInvalidJWTSecret, len(secret))
	}
	if accessTTL <= 0 {
		accessTTL = constants.DefaultAccessTokenTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = constants.DefaultRefreshTokenTTL
	}

	return &Service{
		secret:      []byte(secret),
		idGenerator: idGenerator,
		clock:       clk,
		accessTTL:   accessTTL,
		refreshTTL:  refreshTTL,
	}, nil
}

func (s *Service) IssueAccessToken(subject string) (string, error) {
	return s.IssueAccessTokenWithTTL(subject, s.accessTTL)
}

func (s *Service) IssueAccessTokenWithTTL(subject string, ttl time.Duration) (string, error) {
	token, err := s.sign(subject, TypeAccess, ttl)
	if err != nil {
		return "", err
	}
	incrementAccessTokensIssued()
	return token, nil
}

func (s *Service) IssueRefreshToken(subject string) (string, error) {
	token, err := s.sign(subject, TypeRefresh, s.refreshTTL)
	if err != nil {
		return "", err
	}
	incrementRefreshTokensIssued()
	return token, nil
}

func (s *Service) sign(subject string, tokenType Type, ttl time.Duration) (string, error) {
	jti, err := s.idGenerator.NewID()
	if err != nil {
		return "", err
	}

	now := s.clock.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"jti":  jti,
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
		"type": string(tokenType),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates the signature and expiry of a token and returns its
// subject. Every failure mode collapses to ok=false: callers are not
// meant to distinguish an expired token from a forged one.
func (s *Service) Verify(tokenString string) (string, bool) {
	claims, err := s.Decode(tokenString)
	if err != nil {
		return "", false
	}
	return claims.Subject, true
}

// Decode returns the full claim set of a valid token. Any signature,
// format or expiry failure is reported as ErrInvalidToken.
func (s *Service) Decode(tokenString string) (Claims, error) {
	incrementTokenVerifications()

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
	)

	parsed, err := parser.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		incrementTokenVerificationsFailed()
		return Claims{}, commonerrors.ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		incrementTokenVerificationsFailed()
		return Claims{}, commonerrors.ErrInvalidToken
	}

	claims, err := claimsFromMap(mapClaims)
	if err != nil {
		incrementTokenVerificationsFailed()
		return Claims{}, commonerrors.ErrInvalidToken
	}

	return claims, nil
}

func claimsFromMap(mapClaims jwt.MapClaims) (Claims, error) {
	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		return Claims{}, errors.New("missing sub claim")
	}

	tokenType, _ := mapClaims["type"].(string)
	if tokenType != string(TypeAccess) && tokenType != string(TypeRefresh) {
		return Claims{}, errors.New("missing or unknown type claim")
	}

	exp, ok := mapClaims["exp"].(float64)
	if !ok {
		return Claims{}, errors.New("missing exp claim")
	}

	claims := Claims{
		Subject:   sub,
		TokenType: Type(tokenType),
		ExpiresAt: time.Unix(int64(exp), 0).UTC(),
	}

	if jti, ok := mapClaims["jti"].(string); ok {
		claims.JTI = jti
	}
	if iat, ok := mapClaims["iat"].(float64); ok {
		claims.IssuedAt = time.Unix(int64(iat), 0).UTC()
	}

	return claims, nil
}
