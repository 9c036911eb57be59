package services

import (
	"errors"
	"fmt"
)

// ErrNoSession is returned when a ledger write is attempted without an
// authenticated user. Nothing is persisted in that case.
var ErrNoSession = errors.New("no authenticated session")

// PersistenceError wraps any storage failure (network, constraint,
// timeout). It is surfaced to the caller as-is; nothing here retries.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *PersistenceError) Unwrap() error { return e.Err }

func persistErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}
