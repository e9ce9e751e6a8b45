package merchant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(42, "seller@tajer.app")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.MerchantID)
	assert.Equal(t, "seller@tajer.app", claims.Email)
}

func TestJWTMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT(1, "seller@tajer.app")
	assert.Error(t, err)

	_, err = ParseJWT("whatever")
	assert.Error(t, err)
}

func TestParseJWTInvalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ParseJWT("not-a-token")
	assert.Error(t, err)

	// Signed with a different key
	t.Setenv("JWT_SECRET", "other-secret")
	token, err := GenerateJWT(1, "seller@tajer.app")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	_, err = ParseJWT(token)
	assert.Error(t, err)
}
