package auth

import (
	"strings"
	"testing"

	"its/config"
	"its/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("12345678")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "12345678", hash)

	assert.True(t, hasher.Check("12345678", hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	assert.True(t, hasher.Check("StrongPass123!", hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("StrongPass123!", "invalid_hash"))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("12345678")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	hasher, ok := NewBcryptHasher(&config.Config{}).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	clamped, ok := NewBcryptHasherWithCost(1).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.MinCost, clamped.cost)
}

func TestBcryptHasher_TooLongPassword(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", service.MaxPasswordBytes+1))
	assert.Error(t, err)
}
