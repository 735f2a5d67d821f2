package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/askloop/askloop-api/internal/service/auth"
)

func TestBcryptHashAndCompare(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	verifier := auth.NewBcryptVerifier()

	hashed, err := hasher.Hash("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hashed)

	assert.NoError(t, verifier.Compare(hashed, "secret1"))
	assert.Error(t, verifier.Compare(hashed, "secret2"))
	assert.Error(t, verifier.Compare("not-a-bcrypt-hash", "secret1"))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher(0)
	hashed, err := hasher.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
