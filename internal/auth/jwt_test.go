// File: internal/auth/jwt_test.go
package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	secret := []byte("test-secret-key")

	token, err := GenerateJWT(42, secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	businessID, err := ValidateToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), businessID)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, []byte("secret-one"))
	require.NoError(t, err)

	_, err = ValidateToken(token, []byte("secret-two"))
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", []byte("secret"))
	assert.Error(t, err)
}
