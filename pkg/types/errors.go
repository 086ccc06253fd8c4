package types

import (
	"errors"
	"fmt"
)

// Validation errors. Operations that return one of these have not mutated
// any state; the message is meant to be relayed to the user as-is.
var (
	ErrCodeRequired     = errors.New("code must not be empty")
	ErrDescRequired     = errors.New("description must not be empty")
	ErrCostNegative     = errors.New("cost must be a non-negative number")
	ErrDailyQtyNegative = errors.New("daily quantity must be a non-negative number")
	ErrQtyNotPositive   = errors.New("quantity must be a positive number")
	ErrMaterialRequired = errors.New("material code must not be empty")
	ErrNoProduct        = errors.New("no product selected")
	ErrProductNotFound  = errors.New("product not found")
)

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// StorageError reports a durable-storage failure. The in-memory state stays
// authoritative for the session; the caller decides whether to warn that the
// last change may not have been saved. Distinguish from validation errors
// with errors.As.
type StorageError struct {
	Op  string // "get", "put", "clear", "attach", "detach"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsStorage reports whether err is (or wraps) a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
