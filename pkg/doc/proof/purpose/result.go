/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package purpose

import (
	"fmt"

	"github.com/hyperledger/aries-framework-go/pkg/doc/did"
)

// ErrorCode identifies the reason a proof failed purpose validation.
type ErrorCode string

const (
	// CodePurposeMismatch - the proof's declared purpose term does not match the expected term.
	CodePurposeMismatch ErrorCode = "purpose-mismatch"

	// CodeChallengeMismatch - the proof's challenge does not match the expected anti-replay nonce.
	CodeChallengeMismatch ErrorCode = "challenge-mismatch"

	// CodeDomainMismatch - the proof's domain does not match the expected audience.
	CodeDomainMismatch ErrorCode = "domain-mismatch"

	// CodeExpired - the proof's creation timestamp lies outside the accepted window.
	CodeExpired ErrorCode = "expired"

	// CodeControllerUnauthorized - the signing key is not listed under the required
	// verification relationship in the controller's document.
	CodeControllerUnauthorized ErrorCode = "controller-unauthorized"

	// CodeControllerResolution - the controller document could not be resolved.
	CodeControllerResolution ErrorCode = "controller-resolution"
)

// Error describes a single validation failure.
type Error struct {
	Code ErrorCode
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Code)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Result is the outcome of validating one proof against one purpose context.
// Validation never aborts the caller's flow: collaborator failures are folded
// into the result so verification of multiple proofs can proceed independently.
type Result struct {
	Valid bool
	Error *Error

	// Controller is the resolved controller document, set only on success.
	Controller *did.Doc
}

func invalid(code ErrorCode, err error) Result {
	return Result{Error: &Error{Code: code, Err: err}}
}
