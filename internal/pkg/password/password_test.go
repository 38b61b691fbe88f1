package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct-pw")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "correct-pw", hash)

	require.True(t, Verify("correct-pw", hash))
}

func TestVerifyTrimsWhitespace(t *testing.T) {
	hash, err := Hash("correct-pw")
	require.NoError(t, err)

	// Trailing whitespace from a login form must not lock the user out.
	require.True(t, Verify("correct-pw ", hash))
	require.True(t, Verify("  correct-pw\n", hash))
}

func TestHashTrimsWhitespace(t *testing.T) {
	hash, err := Hash("correct-pw ")
	require.NoError(t, err)

	require.True(t, Verify("correct-pw", hash))
}

func TestVerifyWrongPassword(t *testing.T) {
	hash, err := Hash("correct-pw")
	require.NoError(t, err)

	require.False(t, Verify("wrong-pw", hash))
}

func TestVerifyMalformedHash(t *testing.T) {
	require.False(t, Verify("correct-pw", "not-a-bcrypt-hash"))
	require.False(t, Verify("correct-pw", ""))
}

func TestHashesAreSalted(t *testing.T) {
	h1, err := Hash("correct-pw")
	require.NoError(t, err)
	h2, err := Hash("correct-pw")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2)
}
