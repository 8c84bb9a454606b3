package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hashed, err := HashPassword("hunter2!")
	require.NoError(t, err)
	assert.NotContains(t, hashed, "hunter2!")

	match, err := VerifyPassword("hunter2!", hashed)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestHashPasswordSaltsIndependently(t *testing.T) {
	first, err := HashPassword("same password")
	require.NoError(t, err)
	second, err := HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// Both still verify despite differing salts.
	for _, hashed := range []string{first, second} {
		match, err := VerifyPassword("same password", hashed)
		require.NoError(t, err)
		assert.True(t, match)
	}
}

func TestVerifyPasswordWrongPassword(t *testing.T) {
	hashed, err := HashPassword("correct horse")
	require.NoError(t, err)

	match, err := VerifyPassword("battery staple", hashed)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestVerifyPasswordMalformedStoredHash(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"no separator": "deadbeef",
		"bad key hex":  "zzzz.00112233445566778899aabbccddeeff",
		"bad salt hex": "deadbeef.not-hex",
	}

	for name, stored := range cases {
		t.Run(name, func(t *testing.T) {
			match, err := VerifyPassword("anything", stored)
			require.Error(t, err)
			assert.False(t, match)
		})
	}
}

func TestHashPasswordFormat(t *testing.T) {
	hashed, err := HashPassword("pw")
	require.NoError(t, err)

	key, salt, found := strings.Cut(hashed, hashSeparator)
	require.True(t, found)
	assert.Len(t, key, scryptKeyLen*2)
	assert.Len(t, salt, saltLen*2)
}
