package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(42, secret, time.Hour)
	require.NoError(t, err)

	userID, err := ParseToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, uint64(42), userID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(42, []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("wrong-secret"))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken(42, []byte("secret"), -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("secret"))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not-a-token", []byte("secret"))
	require.ErrorIs(t, err, ErrInvalidToken)
}
