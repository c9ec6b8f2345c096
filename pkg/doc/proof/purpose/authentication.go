/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package purpose

import (
	"errors"
	"fmt"

	vdrapi "github.com/hyperledger/aries-framework-go/pkg/framework/aries/api/vdr"

	"github.com/trustmesh/agenttrust/pkg/doc/proof"
)

// AuthenticationTerm is the purpose term checked by AuthenticationProofPurpose.
const AuthenticationTerm = "authentication"

// AuthenticationProofPurpose checks the anti-replay challenge and, when
// configured, the domain of a proof before running the controller checks.
// Challenge and domain mismatches short-circuit: no controller resolution or
// signature work happens for a proof that already failed them.
type AuthenticationProofPurpose struct {
	*ControllerProofPurpose

	challenge string
	domain    string
}

// NewAuthentication creates an AuthenticationProofPurpose. The challenge is
// the caller's anti-replay nonce and is required; an empty domain disables the
// domain check.
func NewAuthentication(vdr vdrapi.Registry, challenge, domain string,
	opts ...Opt) (*AuthenticationProofPurpose, error) {
	if challenge == "" {
		return nil, errors.New("challenge is required")
	}

	return &AuthenticationProofPurpose{
		ControllerProofPurpose: NewController(AuthenticationTerm, vdr, opts...),
		challenge:              challenge,
		domain:                 domain,
	}, nil
}

// Validate checks challenge, then domain, then delegates to the controller
// checks.
func (ap *AuthenticationProofPurpose) Validate(p proof.Proof, document map[string]interface{},
	suite SignatureSuite, verificationMethod string) Result {
	if p.StringProperty(proof.ChallengeProperty) != ap.challenge {
		return invalid(CodeChallengeMismatch, errors.New("proof challenge does not match the expected nonce"))
	}

	if ap.domain != "" && p.StringProperty(proof.DomainProperty) != ap.domain {
		return invalid(CodeDomainMismatch, fmt.Errorf("proof domain does not match %q", ap.domain))
	}

	return ap.ControllerProofPurpose.Validate(p, document, suite, verificationMethod)
}

// Update extends the base stamping with the challenge and, when configured,
// the domain.
func (ap *AuthenticationProofPurpose) Update(p proof.Proof) proof.Proof {
	updated := ap.ProofPurpose.Update(p)

	updated[proof.ChallengeProperty] = ap.challenge

	if ap.domain != "" {
		updated[proof.DomainProperty] = ap.domain
	}

	return updated
}
