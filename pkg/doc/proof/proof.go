/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package proof defines the linked-data proof model shared by the purpose
// verification stages.
package proof

const (
	// PurposeProperty is the key of the declared purpose term in a proof.
	PurposeProperty = "proofPurpose"

	// VerificationMethodProperty is the key of the signing key reference in a proof.
	VerificationMethodProperty = "verificationMethod"

	// ChallengeProperty is the key of the anti-replay nonce in a proof.
	ChallengeProperty = "challenge"

	// DomainProperty is the key of the intended audience in a proof.
	DomainProperty = "domain"

	// CreatedProperty is the key of the creation timestamp in a proof.
	CreatedProperty = "created"
)

// Proof is a linked-data proof attached to a signed document.
type Proof map[string]interface{}

// StringProperty returns the named property when present and a string,
// or empty otherwise.
func (p Proof) StringProperty(name string) string {
	val, ok := p[name]
	if !ok {
		return ""
	}

	str, _ := val.(string) //nolint:errcheck

	return str
}

// Copy returns a shallow copy of the proof.
func (p Proof) Copy() Proof {
	cp := make(Proof, len(p))

	for k, v := range p {
		cp[k] = v
	}

	return cp
}
