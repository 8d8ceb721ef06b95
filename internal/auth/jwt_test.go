package auth

import (
	"testing"
	"time"

	"sauvetage/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "s3cret", Expiry: time.Hour, Issuer: "sauvetage"}
	token, err := GenerateToken(cfg, 7, "admin@assoc.test", "SUPER_ADMIN")
	require.NoError(t, err)

	claims, err := ParseToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.AdminID)
	assert.Equal(t, "admin@assoc.test", claims.Email)
	assert.Equal(t, "SUPER_ADMIN", claims.Role)
}

func TestTokenWrongSecret(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "s3cret", Expiry: time.Hour, Issuer: "sauvetage"}
	token, err := GenerateToken(cfg, 1, "a@b.fr", "ADMIN")
	require.NoError(t, err)

	_, err = ParseToken(&config.JWTConfig{Secret: "autre", Expiry: time.Hour}, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "s3cret", Expiry: -time.Minute, Issuer: "sauvetage"}
	token, err := GenerateToken(cfg, 1, "a@b.fr", "ADMIN")
	require.NoError(t, err)

	_, err = ParseToken(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
