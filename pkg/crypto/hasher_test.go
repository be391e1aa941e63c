package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_PasswordHasher_Strategies(t *testing.T) {
	for _, strategy := range []string{"bcrypt", "argon2id"} {
		t.Run(strategy, func(t *testing.T) {
			hasher, err := NewPasswordHasher(strategy)
			require.NoError(t, err)

			hashed, err := hasher.Hash("correct horse battery staple")
			require.NoError(t, err)
			require.NotEqual(t, "correct horse battery staple", hashed)

			require.NoError(t, hasher.Compare(hashed, "correct horse battery staple"))
			require.ErrorIs(t,
				hasher.Compare(hashed, "wrong"), ErrMismatchedPassword)
		})
	}
}

func Test_PasswordHasher_DefaultIsBcrypt(t *testing.T) {
	hasher, err := NewPasswordHasher("")
	require.NoError(t, err)

	hashed, err := hasher.Hash("pw")
	require.NoError(t, err)
	require.NoError(t, hasher.Compare(hashed, "pw"))
}

func Test_PasswordHasher_UnknownStrategy(t *testing.T) {
	_, err := NewPasswordHasher("rot13")
	require.Error(t, err)
}

func Test_PasswordHasher_SaltsDiffer(t *testing.T) {
	hasher, err := NewPasswordHasher("argon2id")
	require.NoError(t, err)

	first, err := hasher.Hash("pw")
	require.NoError(t, err)

	second, err := hasher.Hash("pw")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}
