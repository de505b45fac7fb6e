package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePairAndParse(t *testing.T) {
	InitJWT("test-access", "test-refresh")

	pair, err := GeneratePair(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestParseAccessRejectsGarbage(t *testing.T) {
	InitJWT("test-access", "test-refresh")

	_, err := ParseAccess("not-a-token")
	assert.Error(t, err)

	// refresh token 不能当 access token 用
	pair, err := GeneratePair(1, "bob")
	require.NoError(t, err)
	_, err = ParseAccess(pair.RefreshToken)
	assert.Error(t, err)
}

func TestRefreshRotatesPair(t *testing.T) {
	InitJWT("test-access", "test-refresh")

	pair, err := GeneratePair(7, "carol")
	require.NoError(t, err)

	fresh, err := Refresh(pair.RefreshToken)
	require.NoError(t, err)
	claims, err := ParseAccess(fresh.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)

	// access token 不能换新 token 对
	_, err = Refresh(pair.AccessToken)
	assert.Error(t, err)
}
