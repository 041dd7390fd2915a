package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)

	token, err := svc.Issue(42)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewService("secret-one", time.Hour).Issue(42)
	require.NoError(t, err)

	_, err = NewService("secret-two", time.Hour).Verify(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerifyMalformedToken(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.True(t, errors.Is(err, ErrInvalidToken), "token %q", token)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "hunter3"))
	assert.False(t, CheckPassword("not-a-hash", "hunter2"))
}
