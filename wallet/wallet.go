// Package wallet is the entry point for the GUI shell: it owns the in-memory
// account list and exposes view models plus the create, select and view
// operations.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/AlexZinkM/desktop-wallet/internal/account"
	"github.com/AlexZinkM/desktop-wallet/internal/cache"
	"github.com/AlexZinkM/desktop-wallet/internal/common"
	"github.com/AlexZinkM/desktop-wallet/internal/keys"
	"github.com/AlexZinkM/desktop-wallet/internal/model"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

const mainnetCluster = "mainnet"

// ErrInvalidPublicKey is returned when a public key is not valid base58
var ErrInvalidPublicKey = errors.New("invalid public key")

// Directory creates and lists accounts
type Directory interface {
	ListAccounts() ([]model.Account, error)
	CreateAccount() (model.Account, error)
	SecretPhrases(id int64) (seed []string, passphrase []string, err error)
}

// SessionCache keeps the selected account and view
type SessionCache interface {
	Set(key cache.Key, value string) error
	Get(key cache.Key) (string, bool, error)
	Remove(key cache.Key) error
}

// BalanceSyncer fills account balances from the ledger
type BalanceSyncer interface {
	SyncBalances(ctx context.Context, accounts []model.Account) ([]model.Account, error)
}

// LinkOpener opens a URL outside the application, e.g. in a browser
type LinkOpener interface {
	Open(url string) error
}

// Options configures a Wallet
type Options struct {
	// ExplorerURL is a format string with one %s verb for the public key
	ExplorerURL string
	// Cluster is appended as ?cluster= for every network except mainnet
	Cluster string
	// Opener is optional; when nil ViewAccount only returns the URL
	Opener LinkOpener
	// Storage is closed by Close
	Storage io.Closer
}

// Wallet holds the session's account list.
// Balances live only here; they are never written back to storage.
type Wallet struct {
	dir   Directory
	cache SessionCache
	sync  BalanceSyncer
	opts  Options
	log   *zap.Logger

	mu       sync.RWMutex
	accounts []model.Account

	closeOnce sync.Once
	closeErr  error
}

// New creates a Wallet. Call Bootstrap before reading accounts.
func New(dir Directory, c SessionCache, syncer BalanceSyncer, opts Options, log *zap.Logger) *Wallet {
	if log == nil {
		log = zap.NewNop()
	}
	return &Wallet{
		dir:   dir,
		cache: c,
		sync:  syncer,
		opts:  opts,
		log:   log,
	}
}

// Bootstrap loads the stored accounts, creating the default account when
// there are none, and syncs their balances. A failed sync is logged and the
// accounts are kept without balances.
func (w *Wallet) Bootstrap(ctx context.Context) ([]model.AccountView, error) {
	accounts, err := w.dir.ListAccounts()
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	if len(accounts) == 0 {
		acc, err := w.dir.CreateAccount()
		if err != nil {
			return nil, fmt.Errorf("failed to create default account: %w", err)
		}
		w.log.Info("default account created", zap.String("pubkey", acc.PublicKey))

		accounts, err = w.dir.ListAccounts()
		if err != nil {
			return nil, fmt.Errorf("failed to list accounts: %w", err)
		}
	}

	if err := w.reload(w.syncBalances(ctx, accounts)); err != nil {
		return nil, err
	}
	return w.AccountViews(), nil
}

// Refresh syncs balances again and reloads accounts from storage. Accounts
// created while the sync was in flight are kept; a failed sync keeps the
// balances already known.
func (w *Wallet) Refresh(ctx context.Context) ([]model.AccountView, error) {
	accounts, err := w.dir.ListAccounts()
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	if err := w.reload(w.syncBalances(ctx, accounts)); err != nil {
		return nil, err
	}
	return w.AccountViews(), nil
}

// CreateAccount adds a new account and returns the refreshed list.
// Balances already known for existing accounts are kept; the new account has
// none until the next Refresh.
func (w *Wallet) CreateAccount(ctx context.Context) ([]model.AccountView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := w.dir.CreateAccount(); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if err := w.reload(nil); err != nil {
		return nil, err
	}
	return w.AccountViews(), nil
}

// AccountViews returns the current accounts as view models
func (w *Wallet) AccountViews() []model.AccountView {
	w.mu.RLock()
	defer w.mu.RUnlock()

	views := make([]model.AccountView, 0, len(w.accounts))
	for _, acc := range w.accounts {
		views = append(views, toView(acc))
	}
	return views
}

// SelectAccount remembers id as the selected account
func (w *Wallet) SelectAccount(id string) error {
	if err := w.cache.Set(cache.SelectedAccount, strings.TrimSpace(id)); err != nil {
		return fmt.Errorf("failed to save selected account: %w", err)
	}
	return nil
}

// SelectView remembers name as the selected view
func (w *Wallet) SelectView(name string) error {
	if err := w.cache.Set(cache.SelectedView, string(model.ParseView(name))); err != nil {
		return fmt.Errorf("failed to save selected view: %w", err)
	}
	return nil
}

// SelectedAccount returns the selected account, or nil when nothing usable is
// selected (no selection, an id that is not a number, or an account that no
// longer exists).
func (w *Wallet) SelectedAccount() (*model.AccountView, error) {
	raw, found, err := w.cache.Get(cache.SelectedAccount)
	if err != nil {
		if cache.IsCorruptEntry(err) {
			w.log.Warn("ignoring corrupt selected account", zap.Error(err))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read selected account: %w", err)
	}
	if !found {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		w.log.Debug("selected account id is not a number", zap.String("value", raw))
		return nil, nil
	}

	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, acc := range w.accounts {
		if acc.ID == id {
			view := toView(acc)
			return &view, nil
		}
	}
	return nil, nil
}

// SelectedView returns the selected view, Wallet when none is stored or the
// stored value cannot be read.
func (w *Wallet) SelectedView() model.View {
	raw, found, err := w.cache.Get(cache.SelectedView)
	if err != nil {
		w.log.Warn("failed to read selected view", zap.Error(err))
		return model.ViewWallet
	}
	if !found {
		return model.ViewWallet
	}
	return model.ParseView(raw)
}

// ViewAccount builds the block explorer URL for pubkey and hands it to the
// configured LinkOpener, if any.
func (w *Wallet) ViewAccount(pubkey string) (string, error) {
	pk, err := solana.PublicKeyFromBase58(strings.TrimSpace(pubkey))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	url := explorerURL(w.opts.ExplorerURL, w.opts.Cluster, pk.String())
	if w.opts.Opener != nil {
		if err := w.opts.Opener.Open(url); err != nil {
			return url, fmt.Errorf("failed to open explorer: %w", err)
		}
	}
	return url, nil
}

// AccountQR returns a base64 PNG QR code of the account's public key
func (w *Wallet) AccountQR(id int64) (model.QRResponse, error) {
	acc, ok := w.findAccount(id)
	if !ok {
		return model.QRResponse{}, account.ErrAccountNotFound
	}

	qr, err := generateQRCode(acc.PublicKey)
	if err != nil {
		return model.QRResponse{}, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return model.QRResponse{PublicKey: acc.PublicKey, QR: qr}, nil
}

// SecretPhrases returns the words of the account's seed phrase and passphrase
func (w *Wallet) SecretPhrases(id int64) (model.PhrasesResponse, error) {
	seed, pass, err := w.dir.SecretPhrases(id)
	if err != nil {
		return model.PhrasesResponse{}, err
	}
	return model.PhrasesResponse{SeedPhrase: seed, Passphrase: pass}, nil
}

// Close releases the storage handle. Safe to call more than once.
func (w *Wallet) Close() error {
	w.closeOnce.Do(func() {
		if w.opts.Storage != nil {
			w.closeErr = w.opts.Storage.Close()
		}
		w.log.Info("wallet closed")
	})
	return w.closeErr
}

// syncBalances returns the balances fetched for accounts keyed by public
// key, nil entries included. A failed sync is logged and yields nil.
func (w *Wallet) syncBalances(ctx context.Context, accounts []model.Account) map[string]*uint64 {
	if w.sync == nil || len(accounts) == 0 {
		return nil
	}

	synced, err := w.sync.SyncBalances(ctx, accounts)
	if err != nil {
		w.log.Warn("balance sync failed, showing accounts without fresh balances", zap.Error(err))
		return nil
	}

	fresh := make(map[string]*uint64, len(synced))
	for _, acc := range synced {
		fresh[acc.PublicKey] = acc.Balance
	}
	return fresh
}

// reload lists accounts and replaces the in-memory list while holding w.mu,
// so the last reload always reflects the latest insert. Balances come from
// fresh when present there, otherwise from the list being replaced.
func (w *Wallet) reload(fresh map[string]*uint64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	accounts, err := w.dir.ListAccounts()
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}

	known := make(map[string]*uint64, len(w.accounts)+len(fresh))
	for _, acc := range w.accounts {
		if acc.Balance != nil {
			known[acc.PublicKey] = acc.Balance
		}
	}
	for pubkey, bal := range fresh {
		known[pubkey] = bal
	}

	for i := range accounts {
		if bal := known[accounts[i].PublicKey]; bal != nil {
			lamports := *bal
			accounts[i].Balance = &lamports
		}
	}
	w.accounts = accounts
	return nil
}

func (w *Wallet) findAccount(id int64) (model.Account, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, acc := range w.accounts {
		if acc.ID == id {
			return acc, true
		}
	}
	return model.Account{}, false
}

func toView(acc model.Account) model.AccountView {
	view := model.AccountView{
		ID:               acc.ID,
		Name:             acc.Name,
		PublicKey:        acc.PublicKey,
		PublicKeyDisplay: acc.PublicKey,
		Balance:          acc.Balance,
	}
	// stored keys always come from DeriveKeypair; the guard only covers hand-edited rows
	if len(acc.PublicKey) >= 9 {
		view.PublicKeyDisplay = keys.Fingerprint(acc.PublicKey)
	}
	if acc.Balance != nil {
		view.BalanceSOL = common.LamportsToSOL(*acc.Balance)
	}
	return view
}

func explorerURL(template, cluster, pubkey string) string {
	url := fmt.Sprintf(template, pubkey)
	if cluster == "" || cluster == mainnetCluster {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "cluster=" + cluster
}
