package vault

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testScryptN = 1 << 4

func TestPlain(t *testing.T) {
	sealed, err := Plain{}.Seal("word word word")
	require.NoError(t, err)
	require.Equal(t, "word word word", sealed)

	opened, err := Plain{}.Open(sealed)
	require.NoError(t, err)
	require.Equal(t, "word word word", opened)
}

func TestPasswordSealer(t *testing.T) {
	t.Run("RoundTrip", testRoundTrip())
	t.Run("FreshSaltPerSeal", testFreshSalt())
	t.Run("WrongPassword", testWrongPassword())
	t.Run("NotSealed", testNotSealed())
	t.Run("InvalidParams", testInvalidParams())
}

func testRoundTrip() func(*testing.T) {
	return func(t *testing.T) {
		s, err := NewPasswordSealer([]byte("dev"), testScryptN)
		require.NoError(t, err)

		sealed, err := s.Seal("abandon ability able")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(sealed, "cwt1$16$"))
		require.NotContains(t, sealed, "abandon")

		opened, err := s.Open(sealed)
		require.NoError(t, err)
		require.Equal(t, "abandon ability able", opened)
	}
}

func testFreshSalt() func(*testing.T) {
	return func(t *testing.T) {
		s, err := NewPasswordSealer([]byte("dev"), testScryptN)
		require.NoError(t, err)

		a, err := s.Seal("same")
		require.NoError(t, err)
		b, err := s.Seal("same")
		require.NoError(t, err)
		require.NotEqual(t, a, b)
	}
}

func testWrongPassword() func(*testing.T) {
	return func(t *testing.T) {
		s, err := NewPasswordSealer([]byte("dev"), testScryptN)
		require.NoError(t, err)
		other, err := NewPasswordSealer([]byte("prod"), testScryptN)
		require.NoError(t, err)

		sealed, err := s.Seal("secret")
		require.NoError(t, err)

		_, err = other.Open(sealed)
		require.ErrorIs(t, err, ErrInvalidPassword)
	}
}

func testNotSealed() func(*testing.T) {
	return func(t *testing.T) {
		s, err := NewPasswordSealer([]byte("dev"), testScryptN)
		require.NoError(t, err)

		_, err = s.Open("abandon ability able")
		require.ErrorIs(t, err, ErrNotSealed)
	}
}

func testInvalidParams() func(*testing.T) {
	return func(t *testing.T) {
		_, err := NewPasswordSealer(nil, testScryptN)
		require.Error(t, err)

		_, err = NewPasswordSealer([]byte("dev"), 1000)
		require.Error(t, err)
	}
}
