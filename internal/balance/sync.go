// Package balance enriches in-memory accounts with their on-chain balances.
package balance

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/desktop-wallet/internal/model"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

// LedgerClient queries the chain for many accounts at once.
// The result is positional: result[i] belongs to keys[i] and is nil when the
// chain has no record of that account.
type LedgerClient interface {
	GetBalances(ctx context.Context, keys []solana.PublicKey) ([]*uint64, error)
}

// Synchronizer merges ledger balances into account lists
type Synchronizer struct {
	ledger LedgerClient
	log    *zap.Logger
}

// NewSynchronizer creates a Synchronizer using ledger
func NewSynchronizer(ledger LedgerClient, log *zap.Logger) *Synchronizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Synchronizer{ledger: ledger, log: log}
}

// SyncBalances returns a copy of accounts with Balance set from one batched
// ledger query. Any unparsable public key fails the whole call, as does any
// ledger error. accounts is never modified and nothing is persisted.
func (s *Synchronizer) SyncBalances(ctx context.Context, accounts []model.Account) ([]model.Account, error) {
	if len(accounts) == 0 {
		return []model.Account{}, nil
	}

	pubkeys := make([]solana.PublicKey, 0, len(accounts))
	for _, acc := range accounts {
		pk, err := solana.PublicKeyFromBase58(acc.PublicKey)
		if err != nil {
			return nil, &BalanceError{
				Kind: InvalidPublicKey,
				Err:  fmt.Errorf("account %d (%q): %w", acc.ID, acc.PublicKey, err),
			}
		}
		pubkeys = append(pubkeys, pk)
	}

	balances, err := s.ledger.GetBalances(ctx, pubkeys)
	if err != nil {
		return nil, &BalanceError{Kind: RemoteFailure, Err: err}
	}
	if len(balances) != len(pubkeys) {
		return nil, &BalanceError{
			Kind: RemoteFailure,
			Err:  fmt.Errorf("ledger returned %d records for %d keys", len(balances), len(pubkeys)),
		}
	}

	synced := make([]model.Account, len(accounts))
	for i, acc := range accounts {
		acc.Balance = nil
		if balances[i] != nil {
			lamports := *balances[i]
			acc.Balance = &lamports
		}
		synced[i] = acc
	}

	s.log.Debug("balances synced", zap.Int("accounts", len(synced)))
	return synced, nil
}
