package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPassword(hash, "password123"))
	assert.False(t, CheckPassword(hash, "password124"))
	assert.False(t, CheckPassword("not-a-hash", "password123"))
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret", 30*time.Minute)

	token, err := tokens.Issue("ivanov@example.com")
	require.NoError(t, err)

	email, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "ivanov@example.com", email)
}

func TestTokenExpired(t *testing.T) {
	tokens := NewTokens("test-secret", -time.Minute)

	token, err := tokens.Issue("ivanov@example.com")
	require.NoError(t, err)

	_, err = tokens.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokens("secret-a", 30*time.Minute)
	verifier := NewTokens("secret-b", 30*time.Minute)

	token, err := issuer.Issue("ivanov@example.com")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenMissingSubject(t *testing.T) {
	tokens := NewTokens("test-secret", 30*time.Minute)

	token, err := tokens.Issue("")
	require.NoError(t, err)

	_, err = tokens.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	tokens := NewTokens("test-secret", 30*time.Minute)

	_, err := tokens.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
