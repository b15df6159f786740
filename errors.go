package tether

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
//
// Contract violations are not returned: operations panic with a
// *KeyError wrapping one of these sentinels. Absence of a value is
// never an error; Get reports it through its second result.
var (
	// ErrNilHost indicates a nil host pointer was passed to an operation.
	ErrNilHost = errors.New("nil host")

	// ErrSlotReclaimed indicates a key's registry slot was collected.
	// The registry pins every slot for the life of the process, so this
	// firing means association state has been corrupted.
	ErrSlotReclaimed = errors.New("key slot reclaimed")

	// ErrAtomicUnsupported indicates WithAtomic was given to a key
	// whose policy never holds the value.
	ErrAtomicUnsupported = errors.New("atomic not supported for policy")
)

// KeyError represents a contract violation on a key operation.
// It wraps a sentinel error with context about the key involved and is
// used as a panic payload, so recovery sites can errors.Is() against
// the sentinels above.
type KeyError struct {
	Err    error  // Underlying sentinel error (ErrNilHost, etc.)
	Key    string // Name of the key involved, if any
	Policy Policy // Policy of the key involved, if any
}

func (e *KeyError) Error() string {
	if e.Key != "" && e.Policy != "" {
		return fmt.Sprintf("%s (key %s, policy %s)", e.Err.Error(), e.Key, e.Policy)
	}
	if e.Key != "" {
		return fmt.Sprintf("%s (key %s)", e.Err.Error(), e.Key)
	}
	return e.Err.Error()
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

// newKeyError creates a KeyError for contract violations.
func newKeyError(sentinel error, key string, policy Policy) error {
	return &KeyError{
		Err:    sentinel,
		Key:    key,
		Policy: policy,
	}
}
