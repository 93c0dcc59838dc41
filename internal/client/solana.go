package client

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/sony/gobreaker"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// maxAccountsPerRequest is the getMultipleAccounts limit of Solana RPC nodes
	maxAccountsPerRequest = 100

	defaultTimeout   = 15 * time.Second
	defaultRateLimit = 10
	breakerTripAfter = 5
)

// SolanaClient is a client for reading account state from Solana RPC
type SolanaClient struct {
	rpcClient *rpc.Client
	rpcURL    string
	timeout   time.Duration
	limiter   ratelimit.Limiter
	cb        *gobreaker.CircuitBreaker
	log       *zap.Logger
}

// Option configures a SolanaClient
type Option func(*SolanaClient)

// WithTimeout bounds every RPC call
func WithTimeout(d time.Duration) Option {
	return func(c *SolanaClient) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRateLimit caps outgoing RPC calls per second. Zero or less disables pacing.
func WithRateLimit(perSecond int) Option {
	return func(c *SolanaClient) {
		if perSecond <= 0 {
			c.limiter = ratelimit.NewUnlimited()
			return
		}
		c.limiter = ratelimit.New(perSecond)
	}
}

// WithLogger sets the logger used for breaker state changes
func WithLogger(log *zap.Logger) Option {
	return func(c *SolanaClient) {
		if log != nil {
			c.log = log
		}
	}
}

// NewSolanaClient creates a new Solana client for the given RPC endpoint.
func NewSolanaClient(rpcURL string, opts ...Option) (*SolanaClient, error) {
	if rpcURL == "" {
		return nil, fmt.Errorf("empty Solana RPC URL")
	}

	c := &SolanaClient{
		rpcClient: rpc.New(rpcURL),
		rpcURL:    rpcURL,
		timeout:   defaultTimeout,
		limiter:   ratelimit.New(defaultRateLimit),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cb = newCircuitBreaker(c.log)

	return c, nil
}

// RPCURL returns the endpoint the client talks to
func (c *SolanaClient) RPCURL() string {
	return c.rpcURL
}

// GetBalances gets SOL balances (lamports) for keys.
// The result is positional; an entry is nil when the chain has no such account.
func (c *SolanaClient) GetBalances(ctx context.Context, keys []solana.PublicKey) ([]*uint64, error) {
	balances := make([]*uint64, len(keys))
	if len(keys) == 0 {
		return balances, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for start := 0; start < len(keys); start += maxAccountsPerRequest {
		start := start
		end := min(start+maxAccountsPerRequest, len(keys))
		eg.Go(func() error {
			chunk, err := c.getChunk(egCtx, keys[start:end])
			if err != nil {
				return err
			}
			copy(balances[start:end], chunk)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return balances, nil
}

// getChunk fetches one getMultipleAccounts page
func (c *SolanaClient) getChunk(ctx context.Context, keys []solana.PublicKey) ([]*uint64, error) {
	c.limiter.Take()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := c.cb.Execute(func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		return c.rpcClient.GetMultipleAccountsWithOpts(
			callCtx,
			keys,
			&rpc.GetMultipleAccountsOpts{
				Encoding:   solana.EncodingBase64,
				Commitment: rpc.CommitmentConfirmed,
			},
		)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}

	res, ok := out.(*rpc.GetMultipleAccountsResult)
	if !ok || res == nil {
		return nil, fmt.Errorf("failed to get accounts: empty response")
	}
	if len(res.Value) != len(keys) {
		return nil, fmt.Errorf("failed to get accounts: got %d records for %d keys", len(res.Value), len(keys))
	}

	balances := make([]*uint64, len(keys))
	for i, acc := range res.Value {
		if acc == nil {
			continue
		}
		lamports := acc.Lamports
		balances[i] = &lamports
	}
	return balances, nil
}

func newCircuitBreaker(log *zap.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "solana-rpc",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerTripAfter
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if to == gobreaker.StateOpen {
				log.Warn("rpc node seems down, stop allowing requests", zap.String("breaker", name))
			}
			if from == gobreaker.StateOpen && to == gobreaker.StateHalfOpen {
				log.Info("checking rpc node status", zap.String("breaker", name))
			}
			if from == gobreaker.StateHalfOpen && to == gobreaker.StateClosed {
				log.Info("rpc node seems ok, restart allowing requests", zap.String("breaker", name))
			}
		},
	})
}
