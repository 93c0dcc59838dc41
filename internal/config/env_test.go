package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseNetwork(t *testing.T) {
	for in, want := range map[string]Network{
		"mainnet":  NetworkMainnet,
		"MAINNET":  NetworkMainnet,
		"devnet":   NetworkDevnet,
		" Testnet": NetworkTestnet,
	} {
		got, err := ParseNetwork(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
	}

	_, err := ParseNetwork("unknown")
	require.Error(t, err)
}

func TestInit(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		unsetenv(t, "NETWORK", "SOLANA_DEVNET", "WALLET_DB_PATH", "PORT",
			"RPC_TIMEOUT_SECONDS", "RPC_RATE_LIMIT", "SCRYPT_N", "ENCRYPT_SECRETS")

		require.NoError(t, Init())
		c := Get()
		require.Equal(t, NetworkDevnet, c.Network)
		require.Equal(t, "https://api.devnet.solana.com", c.RPCURL())
		require.Equal(t, "resources/database/database.db", c.DBPath)
		require.Equal(t, "8080", GetPort())
		require.Equal(t, 15*time.Second, c.RPCTimeout())
		require.Equal(t, 10, c.RPCRateLimit)
		require.Equal(t, 262144, c.ScryptN)
		require.False(t, c.EncryptSecrets)
	})

	t.Run("NetworkFromEnv", func(t *testing.T) {
		unsetenv(t, "SOLANA_MAINNET", "SOLANA_TESTNET")
		t.Setenv("NETWORK", "mainnet")
		require.NoError(t, Init())
		require.Equal(t, NetworkMainnet, Get().Network)
		require.Equal(t, "https://api.mainnet-beta.solana.com", GetSolanaRPCURL())

		t.Setenv("NETWORK", "testnet")
		require.NoError(t, Init())
		require.Equal(t, "https://api.testnet.solana.com", GetSolanaRPCURL())
	})

	t.Run("URLOverrides", func(t *testing.T) {
		t.Setenv("SOLANA_MAINNET", "http://custom.mainnet.url")
		t.Setenv("SOLANA_DEVNET", "http://custom.devnet.url")
		t.Setenv("SOLANA_TESTNET", "http://custom.testnet.url")

		for network, want := range map[string]string{
			"mainnet": "http://custom.mainnet.url",
			"devnet":  "http://custom.devnet.url",
			"testnet": "http://custom.testnet.url",
		} {
			t.Setenv("NETWORK", network)
			require.NoError(t, Init())
			require.Equal(t, want, GetSolanaRPCURL())
		}
	})

	t.Run("InvalidNetwork", func(t *testing.T) {
		t.Setenv("NETWORK", "invalid")
		require.Error(t, Init())
	})

	t.Run("InvalidTimeout", func(t *testing.T) {
		t.Setenv("NETWORK", "devnet")
		t.Setenv("RPC_TIMEOUT_SECONDS", "0")
		require.Error(t, Init())
	})
}

// unsetenv removes keys for the duration of the test
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestGetPasswordBytes(t *testing.T) {
	passwordBytes = nil
	_, err := GetPasswordBytes()
	require.Error(t, err)

	passwordBytes = []byte("secret")
	t.Cleanup(func() { passwordBytes = nil })

	out, err := GetPasswordBytes()
	require.NoError(t, err)
	require.Equal(t, []byte("secret"), out)

	clear(out)
	require.Equal(t, []byte("secret"), passwordBytes)
}
