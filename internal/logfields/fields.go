/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"time"

	"go.uber.org/zap"
)

// Log Fields.
const (
	FieldDID                 = "did"
	FieldAlias               = "alias"
	FieldRole                = "role"
	FieldEndpointType        = "endpointType"
	FieldTAAVersion          = "taaVersion"
	FieldTAADigest           = "taaDigest"
	FieldAcceptanceMechanism = "acceptanceMechanism"
	FieldProofPurpose        = "proofPurpose"
	FieldVerificationMethod  = "verificationMethod"
	FieldLedgerOperation     = "ledgerOperation"
	FieldDuration            = "duration"
	FieldUserLogLevel        = "userLogLevel"
)

// WithDID sets the DID field.
func WithDID(did string) zap.Field {
	return zap.String(FieldDID, did)
}

// WithAlias sets the Alias field.
func WithAlias(alias string) zap.Field {
	return zap.String(FieldAlias, alias)
}

// WithRole sets the Role field.
func WithRole(role string) zap.Field {
	return zap.String(FieldRole, role)
}

// WithEndpointType sets the EndpointType field.
func WithEndpointType(endpointType string) zap.Field {
	return zap.String(FieldEndpointType, endpointType)
}

// WithTAAVersion sets the TAAVersion field.
func WithTAAVersion(version string) zap.Field {
	return zap.String(FieldTAAVersion, version)
}

// WithTAADigest sets the TAADigest field.
func WithTAADigest(digest string) zap.Field {
	return zap.String(FieldTAADigest, digest)
}

// WithAcceptanceMechanism sets the AcceptanceMechanism field.
func WithAcceptanceMechanism(mechanism string) zap.Field {
	return zap.String(FieldAcceptanceMechanism, mechanism)
}

// WithProofPurpose sets the ProofPurpose field.
func WithProofPurpose(purpose string) zap.Field {
	return zap.String(FieldProofPurpose, purpose)
}

// WithVerificationMethod sets the VerificationMethod field.
func WithVerificationMethod(verificationMethod string) zap.Field {
	return zap.String(FieldVerificationMethod, verificationMethod)
}

// WithLedgerOperation sets the LedgerOperation field.
func WithLedgerOperation(operation string) zap.Field {
	return zap.String(FieldLedgerOperation, operation)
}

// WithDuration sets the Duration field.
func WithDuration(value time.Duration) zap.Field {
	return zap.Duration(FieldDuration, value)
}

// WithUserLogLevel sets the UserLogLevel field.
func WithUserLogLevel(logLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, logLevel)
}
