package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewAccessToken(t *testing.T) {
	tok, err := NewAccessToken("s3cret", "agent", RoleOperator, "AK123", 15)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	parsed, err := jwt.Parse(tok.Token, func(*jwt.Token) (interface{}, error) { return []byte("s3cret"), nil })
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "agent", claims["sub"])
	assert.Equal(t, RoleOperator, claims["role"])
	assert.Equal(t, "AK123", claims["flight"])
	assert.EqualValues(t, tok.Exp.Unix(), claims["exp"])
}

func TestCheckOperator(t *testing.T) {
	hash, err := HashPassword("hunter2", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckOperator("agent", hash, "agent", "hunter2"))
	assert.False(t, CheckOperator("agent", hash, "agent", "wrong"))
	assert.False(t, CheckOperator("agent", hash, "other", "hunter2"))
	assert.False(t, CheckOperator("agent", "not-a-hash", "agent", "hunter2"))
}
