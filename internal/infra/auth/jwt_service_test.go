package auth

import (
	"testing"
	"time"

	"healthplanner/config"
	"healthplanner/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Minute}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	assert.Equal(t, time.Minute, svc.AccessTokenDuration())

	userID := uuid.New()
	access, refresh, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	claims, err := svc.ValidateToken(access, service.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
	assert.Equal(t, userID.String(), claims.Subject)

	claims, err = svc.ValidateToken(refresh, service.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, claims.Type)
}

func TestJWTService_RejectsWrongType(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	access, refresh, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(refresh, service.TokenTypeAccess)
	assert.Error(t, err)
	_, err = svc.ValidateToken(access, service.TokenTypeRefresh)
	assert.Error(t, err)
	_, err = svc.ValidateToken(access, "id")
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredAndTampered(t *testing.T) {
	cfg := newTestConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	impl, ok := svc.(*jwtService)
	require.True(t, ok)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	access, _, err := impl.GenerateTokens(uuid.New())
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(access, service.TokenTypeAccess)
	assert.Error(t, err)

	_, err = impl.ValidateToken("not.a.token", service.TokenTypeAccess)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
