package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Network is a Solana cluster name
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkDevnet  Network = "devnet"
	NetworkTestnet Network = "testnet"
)

// ParseNetwork parses a cluster name, case-insensitive
func ParseNetwork(s string) (Network, error) {
	switch n := Network(strings.ToLower(strings.TrimSpace(s))); n {
	case NetworkMainnet, NetworkDevnet, NetworkTestnet:
		return n, nil
	default:
		return "", fmt.Errorf("invalid network %q: expected mainnet, devnet or testnet", s)
	}
}

// Decode implements envconfig.Decoder
func (n *Network) Decode(value string) error {
	parsed, err := ParseNetwork(value)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// DefaultURL returns the public RPC endpoint of the cluster
func (n Network) DefaultURL() string {
	switch n {
	case NetworkMainnet:
		return "https://api.mainnet-beta.solana.com"
	case NetworkTestnet:
		return "https://api.testnet.solana.com"
	default:
		return "https://api.devnet.solana.com"
	}
}

// Config contains all configuration parameters for the application.
// Note: Password is prompted at runtime and stored in memory - use GetPasswordBytes()
type Config struct {
	Port       string  `envconfig:"PORT" default:"8080"`
	DBPath     string  `envconfig:"WALLET_DB_PATH" default:"resources/database/database.db"`
	Network    Network `envconfig:"NETWORK" default:"devnet"`
	MainnetURL string  `envconfig:"SOLANA_MAINNET"`
	DevnetURL  string  `envconfig:"SOLANA_DEVNET"`
	TestnetURL string  `envconfig:"SOLANA_TESTNET"`

	RPCTimeoutSeconds int `envconfig:"RPC_TIMEOUT_SECONDS" default:"15"`
	RPCRateLimit      int `envconfig:"RPC_RATE_LIMIT" default:"10"`

	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	ExplorerURL string `envconfig:"EXPLORER_URL" default:"https://explorer.solana.com/address/%s"`

	EncryptSecrets bool `envconfig:"ENCRYPT_SECRETS" default:"false"`
	ScryptN        int  `envconfig:"SCRYPT_N" default:"262144"`
}

// RPCURL resolves the RPC endpoint for the selected network,
// preferring the per-network override when set.
func (c *Config) RPCURL() string {
	var override string
	switch c.Network {
	case NetworkMainnet:
		override = c.MainnetURL
	case NetworkTestnet:
		override = c.TestnetURL
	default:
		override = c.DevnetURL
	}
	if override != "" {
		return override
	}
	return c.Network.DefaultURL()
}

// RPCTimeout returns the per-call RPC timeout
func (c *Config) RPCTimeout() time.Duration {
	return time.Duration(c.RPCTimeoutSeconds) * time.Second
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if c.RPCTimeoutSeconds <= 0 {
		return fmt.Errorf("failed to process config: RPC_TIMEOUT_SECONDS must be positive")
	}
	cfg = c
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetDBPath returns path to the wallet database from configuration
func GetDBPath() string {
	return Get().DBPath
}

// GetSolanaRPCURL returns Solana RPC URL for the configured network
func GetSolanaRPCURL() string {
	return Get().RPCURL()
}

var passwordBytes []byte

// PromptForPassword prompts the user for the wallet password in the terminal.
// The password is read without echoing (hidden input) and stored in memory.
// Call this at startup before any account is created or opened.
func PromptForPassword() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, "Enter wallet password: ")
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return errors.New("password cannot be empty")
	}

	passwordBytes = make([]byte, len(raw))
	copy(passwordBytes, raw)
	clear(raw)
	return nil
}

// GetPasswordBytes returns the password stored in memory (from PromptForPassword).
// Returns an error if the password was not set.
// Caller must zero the returned slice after use for security.
func GetPasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}
