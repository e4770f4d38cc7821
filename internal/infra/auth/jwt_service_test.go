package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clawdeck/config"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, refreshToken, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	claims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_ValidateToken_RejectsRefreshToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	// A refresh token is signed with a different secret, so it must not be
	// accepted as an access token.
	_, refreshToken, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	assert.Equal(t, time.Hour*24*7, svc.GetRefreshTokenDuration())
}
