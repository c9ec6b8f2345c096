/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ledger defines the data model and connectivity contract for the
// permissioned identity ledger.
package ledger

import (
	"context"
	"fmt"

	"github.com/trustmesh/agenttrust/pkg/ledger/role"
)

// EndpointType selects among the endpoint categories a DID may publish.
type EndpointType string

const (
	// TypeEndpoint is the default DIDComm service endpoint category.
	TypeEndpoint EndpointType = "endpoint"
	// TypeProfile is the profile endpoint category.
	TypeProfile EndpointType = "profile"
	// TypeLinkedDomains is the linked-domains endpoint category.
	TypeLinkedDomains EndpointType = "linked_domains"
)

// ParseEndpointType resolves a raw endpoint type token. The empty token
// selects the default category.
func ParseEndpointType(raw string) (EndpointType, error) {
	switch EndpointType(raw) {
	case "":
		return TypeEndpoint, nil
	case TypeEndpoint, TypeProfile, TypeLinkedDomains:
		return EndpointType(raw), nil
	default:
		return "", fmt.Errorf("unsupported endpoint type %q", raw)
	}
}

// TxnAuthorAgreement is an immutable snapshot of the ledger's active
// transaction author agreement.
type TxnAuthorAgreement struct {
	Version  string
	Text     string
	Digest   string
	Ratified int64 // unix seconds, zero when the ledger omits it
	Required bool
}

// TAAAcceptance records consent to a transaction author agreement. It is
// evidence of consent only while Digest matches the digest of the currently
// active agreement.
type TAAAcceptance struct {
	Digest    string
	Mechanism string
	Time      int64 // unix seconds, date precision
}

// NymRegistration binds a DID to a verification key and a role for a single
// ledger write. It is constructed per transaction and never mutated once
// submitted.
type NymRegistration struct {
	DID    string
	VerKey string
	Role   role.Role
	Alias  string
}

// Client is the ledger connectivity collaborator. Read operations are
// idempotent and may be retried by implementations; write operations must be
// submitted exactly once, since transaction ordering is ledger-assigned and a
// blind retry risks double-submission.
type Client interface {
	// RegisterNym submits a nym transaction.
	RegisterNym(ctx context.Context, reg *NymRegistration) error
	// RotateKey submits a nym transaction replacing the verification key of did.
	RotateKey(ctx context.Context, did, verKey string) error
	// GetKeyForDID reads the current verification key of did.
	GetKeyForDID(ctx context.Context, did string) (string, error)
	// GetEndpointForDID reads the endpoint of did for the given category.
	GetEndpointForDID(ctx context.Context, did string, endpointType EndpointType) (string, error)
	// GetNymRoleToken reads the raw role token recorded for did.
	GetNymRoleToken(ctx context.Context, did string) (string, error)
	// GetTxnAuthorAgreement reads the active transaction author agreement.
	GetTxnAuthorAgreement(ctx context.Context) (*TxnAuthorAgreement, error)
}
