// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"clawdeck/config"
	"clawdeck/internal/domain/service"
	"clawdeck/internal/errors"
)

const (
	accessTokenTTL  = time.Minute * 15
	refreshTokenTTL = time.Hour * 24 * 7
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTokenTTL,
		refreshTTL:    refreshTokenTTL,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given user.
func (s *jwtService) GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(userID, s.accessTTL, s.accessSecret, "access")
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, s.refreshTTL, s.refreshSecret, "refresh")
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateToken checks the validity of an access token string and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "token subject")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "token subject is not a valid user id")
	}
	claims.UserID = userID

	return claims, nil
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID uuid.UUID, ttl time.Duration, secret, tokenType string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}
