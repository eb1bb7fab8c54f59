package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashSecret(t *testing.T) {
	hash, err := HashSecret("s3cret")
	require.NoError(t, err)

	assert.True(t, IsBcryptHash(hash))
	assert.True(t, VerifySecret(hash, "s3cret"))
	assert.False(t, VerifySecret(hash, "S3cret"))
	assert.False(t, IsBcryptHash("s3cret"))
}
