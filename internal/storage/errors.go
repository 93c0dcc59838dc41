package storage

import (
	"errors"
	"fmt"
)

// ErrorKind classifies storage failures
type ErrorKind int

const (
	KindIO ErrorKind = iota + 1
	KindSchema
	KindQuery
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindSchema:
		return "schema"
	case KindQuery:
		return "query"
	default:
		return fmt.Sprintf("kind %d", int(k))
	}
}

// StorageError wraps a database driver error with the failed operation
type StorageError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s error: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError checks if error is a StorageError of the given kind
func IsStorageError(err error, kind ErrorKind) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr) && storageErr.Kind == kind
}

func ioErr(op string, err error) error { return &StorageError{Kind: KindIO, Op: op, Err: err} }
func schemaErr(op string, err error) error { return &StorageError{Kind: KindSchema, Op: op, Err: err} }
func queryErr(op string, err error) error { return &StorageError{Kind: KindQuery, Op: op, Err: err} }
