package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifiesOwnHash(t *testing.T) {
	hash := HashPassword([]byte("Secret#123"))

	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$"))

	ok, err := VerifyPassword([]byte("Secret#123"), hash)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestHashPassword_WrongPasswordRejected(t *testing.T) {
	hash := HashPassword([]byte("Secret#123"))

	ok, err := VerifyPassword([]byte("secret#123"), hash)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	a := HashPassword([]byte("same"))
	b := HashPassword([]byte("same"))

	// different salts -> different encodings for the same password
	require.NotEqual(t, a, b)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []string{
		"",
		"h123456",
		"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=x,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!!",
	}
	for _, encoded := range tests {
		ok, err := VerifyPassword([]byte("pw"), encoded)
		require.ErrorIs(t, err, ErrInvalidHash, "input %q", encoded)
		require.False(t, ok)
	}
}
