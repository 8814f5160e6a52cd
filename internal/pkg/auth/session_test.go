package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

func TestSessionStoreIssueAndResolve(t *testing.T) {
	store := NewSessionStore()

	token, err := store.Issue("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := store.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestSessionStoreIssuesUniqueTokens(t *testing.T) {
	store := NewSessionStore()

	first, err := store.Issue("user-1")
	require.NoError(t, err)
	second, err := store.Issue("user-1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSessionStoreResolveUnknownToken(t *testing.T) {
	store := NewSessionStore()

	_, err := store.Resolve("no-such-token")
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
}

func TestSessionStoreRevoke(t *testing.T) {
	store := NewSessionStore()

	token, err := store.Issue("user-1")
	require.NoError(t, err)

	store.Revoke(token)
	_, err = store.Resolve(token)
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)

	// Revoking again is a no-op
	store.Revoke(token)
}

func TestSessionStoreRevokeAllForUser(t *testing.T) {
	store := NewSessionStore()

	first, err := store.Issue("user-1")
	require.NoError(t, err)
	second, err := store.Issue("user-1")
	require.NoError(t, err)
	other, err := store.Issue("user-2")
	require.NoError(t, err)

	store.RevokeAllForUser("user-1")

	_, err = store.Resolve(first)
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
	_, err = store.Resolve(second)
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)

	userID, err := store.Resolve(other)
	require.NoError(t, err)
	assert.Equal(t, "user-2", userID)
}
