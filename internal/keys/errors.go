package keys

import (
	"errors"
	"fmt"
)

// CryptoErrorKind classifies key derivation failures
type CryptoErrorKind int

const (
	// EntropyFailure means the system entropy source could not be read
	EntropyFailure CryptoErrorKind = iota + 1
	// InvalidPhrase means a phrase is not a valid mnemonic
	InvalidPhrase
)

func (k CryptoErrorKind) String() string {
	switch k {
	case EntropyFailure:
		return "entropy failure"
	case InvalidPhrase:
		return "invalid phrase"
	default:
		return fmt.Sprintf("crypto error kind %d", int(k))
	}
}

// CryptoError is returned by phrase generation and keypair derivation
type CryptoError struct {
	Kind CryptoErrorKind
	Err  error
}

func (e *CryptoError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}

// IsEntropyFailure checks if error is an entropy CryptoError
func IsEntropyFailure(err error) bool {
	return isKind(err, EntropyFailure)
}

// IsInvalidPhrase checks if error is an invalid phrase CryptoError
func IsInvalidPhrase(err error) bool {
	return isKind(err, InvalidPhrase)
}

func isKind(err error, kind CryptoErrorKind) bool {
	var cryptoErr *CryptoError
	return errors.As(err, &cryptoErr) && cryptoErr.Kind == kind
}
