package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	h := NewPasswordHasher()

	digest, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotContains(t, digest, "correct horse")

	ok, err := h.Verify("correct horse battery staple", digest)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_WrongPasswordIsFalseNotError(t *testing.T) {
	h := NewPasswordHasher()

	digest, err := h.Hash("right-password")
	require.NoError(t, err)

	ok, err := h.Verify("wrong-password", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_MalformedDigestIsError(t *testing.T) {
	h := NewPasswordHasher()

	ok, err := h.Verify("whatever", "not-a-bcrypt-digest")
	require.Error(t, err)
	assert.False(t, ok)
}

func TestHash_SaltedDigestsDiffer(t *testing.T) {
	h := NewPasswordHasher()

	a, err := h.Hash("same-password")
	require.NoError(t, err)
	b, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
