package cryptox_test

import (
	"testing"

	"github.com/strideapp/stride/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := cryptox.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotContains(t, hash, "correct horse")

	require.NoError(t, cryptox.CheckPassword("correct horse battery staple", hash))
	require.Error(t, cryptox.CheckPassword("wrong password", hash))
}

func TestHashPasswordSelfSalting(t *testing.T) {
	t.Parallel()

	a, err := cryptox.HashPassword("same input")
	require.NoError(t, err)
	b, err := cryptox.HashPassword("same input")
	require.NoError(t, err)

	// Fresh salt per call means distinct encodings that both verify.
	require.NotEqual(t, a, b)
	require.NoError(t, cryptox.CheckPassword("same input", a))
	require.NoError(t, cryptox.CheckPassword("same input", b))
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	t.Parallel()

	require.Error(t, cryptox.CheckPassword("anything", ""))
	require.Error(t, cryptox.CheckPassword("anything", "not-a-bcrypt-hash"))
	require.Error(t, cryptox.CheckPassword("anything", "$2a$garbage"))
}
