package model

// Account is a locally stored Solana keypair identity.
// ID is zero until the account has been persisted.
type Account struct {
	ID         int64
	Name       string
	SeedPhrase string
	Passphrase string
	PublicKey  string
	Balance    *uint64 // lamports, populated per session by the balance sync, never persisted
}

// AccountView is the account shape handed to the GUI shell
type AccountView struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	PublicKey        string  `json:"pubkey"`
	PublicKeyDisplay string  `json:"pubkey_display"`
	Balance          *uint64 `json:"balance"`
	BalanceSOL       string  `json:"balance_sol,omitempty"`
}
