package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RoundTrip(t *testing.T) {
	s := NewAuthService("test-secret", zerolog.Nop())

	token, err := s.GenerateToken("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestAuthService_ExpiresAfter24h(t *testing.T) {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewAuthService("test-secret", zerolog.Nop())
	s.now = func() time.Time { return issued }

	token, err := s.GenerateToken("user-1")
	require.NoError(t, err)

	s.now = func() time.Time { return issued.Add(23 * time.Hour) }
	_, err = s.ValidateToken(token)
	assert.NoError(t, err)

	s.now = func() time.Time { return issued.Add(TokenTTL + time.Second) }
	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestAuthService_RejectsForeignTokens(t *testing.T) {
	s := NewAuthService("test-secret", zerolog.Nop())
	other := NewAuthService("other-secret", zerolog.Nop())

	foreign, err := other.GenerateToken("user-1")
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: "user-1"}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"wrong secret": foreign,
		"garbage":      "not.a.token",
		"empty":        "",
		"no expiry":    noExp,
		"no user id":   noUser,
		"alg none":     unsignedToken(t),
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := s.ValidateToken(token)
			assert.Error(t, err)
		})
	}
}

func unsignedToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return token
}
