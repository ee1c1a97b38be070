package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() TokenManager {
	return NewTokenManager("test-secret", 60, 1440, 1440)
}

func TestTokenManager_AccessTokenRoundTrip(t *testing.T) {
	tm := newTestManager()

	token, err := tm.GenerateAccessToken("u1", "a@b.com", "user")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.AccountID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "user", claims.UserType)
	assert.Equal(t, TokenTypeAccess, claims.Type)
}

func TestTokenManager_WrongTokenType(t *testing.T) {
	tm := newTestManager()

	token, err := tm.GenerateActivationToken("p1", "provider")
	require.NoError(t, err)

	_, err = tm.ValidateToken(token, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	claims, err := tm.ValidateToken(token, TokenTypeActivation)
	require.NoError(t, err)
	assert.Equal(t, "provider", claims.UserType)
}

func TestTokenManager_ResetTokenCarriesUserType(t *testing.T) {
	tm := newTestManager()

	token, err := tm.GenerateResetToken("u1", "user")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token, TokenTypeReset)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.AccountID)
	assert.Equal(t, "user", claims.UserType)
}

func TestTokenManager_RejectsTamperedToken(t *testing.T) {
	tm := newTestManager()
	other := NewTokenManager("different-secret", 60, 1440, 1440)

	token, err := other.GenerateAccessToken("u1", "a@b.com", "user")
	require.NoError(t, err)

	_, err = tm.ValidateToken(token, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.ValidateToken("not-a-jwt", TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPassword(hash, "hunter22"))
	assert.False(t, CheckPassword(hash, "hunter23"))
}

func TestHashToken(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	c := HashToken("other-token")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64) // hex-encoded sha256
}
