/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable is a transport-level failure to reach the ledger.
	ErrUnavailable = errors.New("ledger unavailable")

	// ErrNotFound indicates the requested DID or attribute has no record on
	// the ledger. It is distinct from a transport failure.
	ErrNotFound = errors.New("not found on ledger")
)

// TransactionError is returned when the ledger refuses a transaction or the
// transaction request cannot be built. It signals that the request itself is
// not permitted, as opposed to a malformed request or a transport failure.
type TransactionError struct {
	Operation string
	Err       error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("ledger transaction %s: %v", e.Operation, e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a TransactionError for the given operation.
func NewTransactionError(operation string, err error) *TransactionError {
	return &TransactionError{Operation: operation, Err: err}
}
