package balance

import (
	"context"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/desktop-wallet/internal/model"
)

type mockLedger struct {
	GetBalancesFunc func(ctx context.Context, keys []solana.PublicKey) ([]*uint64, error)
	calls           int
}

func (m *mockLedger) GetBalances(ctx context.Context, keys []solana.PublicKey) ([]*uint64, error) {
	m.calls++
	return m.GetBalancesFunc(ctx, keys)
}

func lamports(v uint64) *uint64 { return &v }

func testAccounts(n int) []model.Account {
	accounts := make([]model.Account, n)
	for i := range accounts {
		accounts[i] = model.Account{
			ID:        int64(i + 1),
			Name:      "acc",
			PublicKey: solana.NewWallet().PublicKey().String(),
		}
	}
	return accounts
}

func TestSyncBalances(t *testing.T) {
	t.Run("PositionalMerge", func(t *testing.T) {
		accounts := testAccounts(3)
		ledger := &mockLedger{
			GetBalancesFunc: func(_ context.Context, keys []solana.PublicKey) ([]*uint64, error) {
				require.Len(t, keys, 3)
				for i, k := range keys {
					require.Equal(t, accounts[i].PublicKey, k.String())
				}
				return []*uint64{lamports(10), nil, lamports(0)}, nil
			},
		}

		synced, err := NewSynchronizer(ledger, nil).SyncBalances(context.Background(), accounts)
		require.NoError(t, err)
		require.Equal(t, 1, ledger.calls)
		require.Len(t, synced, 3)

		require.EqualValues(t, 10, *synced[0].Balance)
		require.Nil(t, synced[1].Balance)
		require.EqualValues(t, 0, *synced[2].Balance)
		for i := range synced {
			require.Equal(t, accounts[i].ID, synced[i].ID)
			require.Nil(t, accounts[i].Balance, "input must not be mutated")
		}
	})

	t.Run("StaleBalanceCleared", func(t *testing.T) {
		accounts := testAccounts(1)
		accounts[0].Balance = lamports(99)
		ledger := &mockLedger{
			GetBalancesFunc: func(context.Context, []solana.PublicKey) ([]*uint64, error) {
				return []*uint64{nil}, nil
			},
		}

		synced, err := NewSynchronizer(ledger, nil).SyncBalances(context.Background(), accounts)
		require.NoError(t, err)
		require.Nil(t, synced[0].Balance)
	})

	t.Run("EmptyListSkipsLedger", func(t *testing.T) {
		ledger := &mockLedger{}
		synced, err := NewSynchronizer(ledger, nil).SyncBalances(context.Background(), nil)
		require.NoError(t, err)
		require.Empty(t, synced)
		require.Zero(t, ledger.calls)
	})

	t.Run("InvalidPublicKey", func(t *testing.T) {
		accounts := testAccounts(2)
		accounts[1].PublicKey = "dummy_pubkey"
		ledger := &mockLedger{}

		_, err := NewSynchronizer(ledger, nil).SyncBalances(context.Background(), accounts)
		require.Error(t, err)
		require.True(t, IsInvalidPublicKey(err))
		require.Zero(t, ledger.calls)
	})

	t.Run("RemoteFailure", func(t *testing.T) {
		rpcErr := errors.New("connection refused")
		ledger := &mockLedger{
			GetBalancesFunc: func(context.Context, []solana.PublicKey) ([]*uint64, error) {
				return nil, rpcErr
			},
		}

		_, err := NewSynchronizer(ledger, nil).SyncBalances(context.Background(), testAccounts(2))
		require.True(t, IsRemoteFailure(err))
		require.ErrorIs(t, err, rpcErr)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		ledger := &mockLedger{
			GetBalancesFunc: func(context.Context, []solana.PublicKey) ([]*uint64, error) {
				return []*uint64{lamports(1)}, nil
			},
		}

		_, err := NewSynchronizer(ledger, nil).SyncBalances(context.Background(), testAccounts(2))
		require.True(t, IsRemoteFailure(err))
	})
}
