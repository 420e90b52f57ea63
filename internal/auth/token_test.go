package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit_test_secret_1234567890"

func TestTokenRoundtrip(t *testing.T) {
	token, err := generateToken("user-123", "Developer", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := parseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "Developer", claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := generateToken("user-123", "Founder", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = parseToken(token, "a_different_secret_entirely")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := generateToken("user-123", "Developer", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = parseToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := parseToken("definitely.not.a.jwt", testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
