package balance

import (
	"errors"
	"fmt"
)

// ErrorKind classifies balance sync failures
type ErrorKind int

const (
	// InvalidPublicKey means a stored public key could not be parsed
	InvalidPublicKey ErrorKind = iota + 1
	// RemoteFailure means the ledger query failed or returned an unusable answer
	RemoteFailure
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidPublicKey:
		return "invalid public key"
	case RemoteFailure:
		return "remote failure"
	default:
		return fmt.Sprintf("balance error kind %d", int(k))
	}
}

// BalanceError is returned by SyncBalances
type BalanceError struct {
	Kind ErrorKind
	Err  error
}

func (e *BalanceError) Error() string {
	return fmt.Sprintf("balance sync: %s: %v", e.Kind, e.Err)
}

func (e *BalanceError) Unwrap() error {
	return e.Err
}

// IsRemoteFailure checks if error is a remote BalanceError
func IsRemoteFailure(err error) bool {
	return isKind(err, RemoteFailure)
}

// IsInvalidPublicKey checks if error is an invalid key BalanceError
func IsInvalidPublicKey(err error) bool {
	return isKind(err, InvalidPublicKey)
}

func isKind(err error, kind ErrorKind) bool {
	var balanceErr *BalanceError
	return errors.As(err, &balanceErr) && balanceErr.Kind == kind
}
