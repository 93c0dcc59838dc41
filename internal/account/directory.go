// Package account creates, names and lists the wallet's accounts.
package account

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlexZinkM/desktop-wallet/internal/keys"
	"github.com/AlexZinkM/desktop-wallet/internal/model"
	"github.com/AlexZinkM/desktop-wallet/internal/vault"

	"go.uber.org/zap"
)

const mainAccountName = "Main Account"

// ErrAccountNotFound is returned when no account has the requested id
var ErrAccountNotFound = errors.New("account not found")

// AccountStore persists account records
type AccountStore interface {
	List() ([]model.Account, error)
	InsertNamed(acc model.Account, name func(count int) string) (model.Account, error)
}

// Directory manages the set of local accounts.
// Accounts carry their secret phrases in stored form, sealed by the
// configured vault.Sealer; use SecretPhrases to read them back.
type Directory struct {
	store  AccountStore
	sealer vault.Sealer
	log    *zap.Logger
}

// NewDirectory creates a Directory. A nil sealer stores phrases as plain text.
func NewDirectory(store AccountStore, sealer vault.Sealer, log *zap.Logger) *Directory {
	if sealer == nil {
		sealer = vault.Plain{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Directory{store: store, sealer: sealer, log: log}
}

// ListAccounts returns all accounts in creation order
func (d *Directory) ListAccounts() ([]model.Account, error) {
	return d.store.List()
}

// CreateAccount generates a new keypair identity and stores it.
// Phrases are generated, derived and sealed before anything is written, so a
// failure leaves no partial account behind. The returned account carries the
// phrases in stored form, like ListAccounts.
func (d *Directory) CreateAccount() (model.Account, error) {
	seedPhrase, err := keys.GenerateSecretPhrase()
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to generate seed phrase: %w", err)
	}

	passphrase, err := keys.GenerateSecretPhrase()
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to generate passphrase: %w", err)
	}

	keypair, err := keys.DeriveKeypair(seedPhrase, passphrase)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to derive keypair: %w", err)
	}
	pubkey := keys.PublicKeyOf(keypair)
	clear(keypair)

	sealedSeed, err := d.sealer.Seal(seedPhrase)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to seal seed phrase: %w", err)
	}

	sealedPass, err := d.sealer.Seal(passphrase)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to seal passphrase: %w", err)
	}

	acc, err := d.store.InsertNamed(model.Account{
		SeedPhrase: sealedSeed,
		Passphrase: sealedPass,
		PublicKey:  pubkey,
	}, accountName)
	if err != nil {
		return model.Account{}, err
	}

	d.log.Info("account created",
		zap.Int64("id", acc.ID),
		zap.String("name", acc.Name),
		zap.String("pubkey", acc.PublicKey),
	)
	return acc, nil
}

// FindByID returns the account with the given id, if any
func (d *Directory) FindByID(id int64) (model.Account, bool, error) {
	accounts, err := d.ListAccounts()
	if err != nil {
		return model.Account{}, false, err
	}
	for _, acc := range accounts {
		if acc.ID == id {
			return acc, true, nil
		}
	}
	return model.Account{}, false, nil
}

// SecretPhrases returns the seed phrase and passphrase words of an account
func (d *Directory) SecretPhrases(id int64) (seed []string, passphrase []string, err error) {
	acc, found, err := d.FindByID(id)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, nil, ErrAccountNotFound
	}

	seedPhrase, err := d.sealer.Open(acc.SeedPhrase)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open seed phrase: %w", err)
	}

	pass, err := d.sealer.Open(acc.Passphrase)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open passphrase: %w", err)
	}

	return strings.Fields(seedPhrase), strings.Fields(pass), nil
}

// accountName names the first account "Main Account" and every later one
// "Account {n}", n being its position.
func accountName(count int) string {
	if count == 0 {
		return mainAccountName
	}
	return fmt.Sprintf("Account %d", count+1)
}
