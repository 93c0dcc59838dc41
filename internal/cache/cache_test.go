package cache_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/desktop-wallet/internal/cache"
	"github.com/AlexZinkM/desktop-wallet/internal/storage"
)

func newCache(t *testing.T) (*cache.Cache, *storage.Handle) {
	t.Helper()
	h, err := storage.Open(storage.MemoryPath)
	require.NoError(t, err)
	require.NoError(t, h.EnsureSchema())
	t.Cleanup(func() { h.Close() })
	return cache.New(h.Cache()), h
}

type failingStore struct{ err error }

func (f failingStore) Put(string, string) error { return f.err }
func (f failingStore) Get(string) (string, bool, error) { return "", false, f.err }
func (f failingStore) Delete(string) error { return f.err }

func TestKeyString(t *testing.T) {
	require.Equal(t, "selected_account", cache.SelectedAccount.String())
	require.Equal(t, "selected_view", cache.SelectedView.String())
	require.Panics(t, func() { _ = cache.Key(99).String() })
}

func TestCache(t *testing.T) {
	t.Run("MissingKey", func(t *testing.T) {
		c, _ := newCache(t)
		value, found, err := c.Get(cache.SelectedView)
		require.NoError(t, err)
		require.False(t, found)
		require.Empty(t, value)
	})

	t.Run("SetGet", func(t *testing.T) {
		c, _ := newCache(t)
		require.NoError(t, c.Set(cache.SelectedView, "Wallet"))

		value, found, err := c.Get(cache.SelectedView)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, "Wallet", value)
	})

	t.Run("LastWriteWins", func(t *testing.T) {
		c, _ := newCache(t)
		require.NoError(t, c.Set(cache.SelectedAccount, "1"))
		require.NoError(t, c.Set(cache.SelectedAccount, "2"))

		value, _, err := c.Get(cache.SelectedAccount)
		require.NoError(t, err)
		require.Equal(t, "2", value)
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		c, _ := newCache(t)
		require.NoError(t, c.Set(cache.SelectedAccount, "1"))
		require.NoError(t, c.Set(cache.SelectedView, "Swap"))
		require.NoError(t, c.Remove(cache.SelectedAccount))

		_, found, err := c.Get(cache.SelectedAccount)
		require.NoError(t, err)
		require.False(t, found)

		value, found, err := c.Get(cache.SelectedView)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, "Swap", value)
	})

	t.Run("Remove", func(t *testing.T) {
		c, _ := newCache(t)
		require.NoError(t, c.Set(cache.SelectedAccount, "ToBeRemoved"))
		require.NoError(t, c.Remove(cache.SelectedAccount))
		require.NoError(t, c.Remove(cache.SelectedAccount))

		_, found, err := c.Get(cache.SelectedAccount)
		require.NoError(t, err)
		require.False(t, found)
	})

	t.Run("StoredAsEnvelope", func(t *testing.T) {
		c, h := newCache(t)
		require.NoError(t, c.Set(cache.SelectedView, `quote " value`))

		raw, found, err := h.Cache().Get("selected_view")
		require.NoError(t, err)
		require.True(t, found)
		require.JSONEq(t, `{"value":"quote \" value"}`, raw)
	})

	t.Run("CorruptEntry", func(t *testing.T) {
		for _, raw := range []string{
			"not json",
			"{}",
			"null",
			`{"value":null}`,
			`{"other":"x"}`,
			`{"value":42}`,
		} {
			c, h := newCache(t)
			require.NoError(t, h.Cache().Put("selected_view", raw))

			value, found, err := c.Get(cache.SelectedView)
			require.Error(t, err, raw)
			require.False(t, found, raw)
			require.Empty(t, value, raw)
			require.True(t, cache.IsCorruptEntry(err), raw)
		}
	})

	t.Run("EmptyValue", func(t *testing.T) {
		c, h := newCache(t)
		require.NoError(t, h.Cache().Put("selected_view", `{"value":""}`))

		value, found, err := c.Get(cache.SelectedView)
		require.NoError(t, err)
		require.True(t, found)
		require.Empty(t, value)
	})

	t.Run("StorageError", func(t *testing.T) {
		storeErr := errors.New("disk gone")
		c := cache.New(failingStore{err: storeErr})

		require.ErrorIs(t, c.Set(cache.SelectedView, "Wallet"), storeErr)
		_, _, err := c.Get(cache.SelectedView)
		require.ErrorIs(t, err, storeErr)
		require.False(t, cache.IsCorruptEntry(err))
		require.ErrorIs(t, c.Remove(cache.SelectedView), storeErr)
	})
}
