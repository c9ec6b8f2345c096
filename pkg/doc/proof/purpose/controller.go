/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package purpose

import (
	"fmt"
	"strings"

	"github.com/hyperledger/aries-framework-go/pkg/doc/did"
	vdrapi "github.com/hyperledger/aries-framework-go/pkg/framework/aries/api/vdr"

	"github.com/trustmesh/agenttrust/pkg/doc/proof"
)

var relationships = map[string]did.VerificationRelationship{
	"authentication":       did.Authentication,
	"assertionMethod":      did.AssertionMethod,
	"capabilityDelegation": did.CapabilityDelegation,
	"capabilityInvocation": did.CapabilityInvocation,
}

// ControllerProofPurpose validates, on top of the base term and freshness
// checks, that the signing key is listed under the verification relationship
// matching the purpose term in the controller's resolved document.
type ControllerProofPurpose struct {
	*ProofPurpose

	vdr vdrapi.Registry
}

// NewController creates a ControllerProofPurpose for the given term.
func NewController(term string, vdr vdrapi.Registry, opts ...Opt) *ControllerProofPurpose {
	return &ControllerProofPurpose{
		ProofPurpose: New(term, opts...),
		vdr:          vdr,
	}
}

// Validate checks the proof against this purpose. The document and suite are
// the ones a composing verifier runs the signature check with; this stage only
// adjudicates purpose, freshness and key authorization. Collaborator failures
// are folded into the result, never returned as errors, so verification of
// other proofs on the same document can proceed.
func (cp *ControllerProofPurpose) Validate(p proof.Proof, _ map[string]interface{},
	_ SignatureSuite, verificationMethod string) Result {
	if base := cp.ProofPurpose.Validate(p); !base.Valid {
		return base
	}

	relationship, supported := relationships[cp.term]
	if !supported {
		return invalid(CodePurposeMismatch, fmt.Errorf("proof purpose %q not supported", cp.term))
	}

	controller := verificationMethod
	if idx := strings.Index(verificationMethod, "#"); idx > 0 {
		controller = verificationMethod[:idx]
	} else if idx == 0 {
		return invalid(CodeControllerResolution,
			fmt.Errorf("verification method %q has no controller DID", verificationMethod))
	}

	resolution, err := cp.vdr.Resolve(controller)
	if err != nil {
		return invalid(CodeControllerResolution, fmt.Errorf("resolve controller %q: %w", controller, err))
	}

	doc := resolution.DIDDocument

	for _, vm := range doc.VerificationMethods(relationship)[relationship] {
		if keyID(doc, vm.VerificationMethod.ID) == verificationMethod {
			return Result{Valid: true, Controller: doc}
		}
	}

	return invalid(CodeControllerUnauthorized,
		fmt.Errorf("verification method %q is not authorized for %q in controller document %q",
			verificationMethod, cp.term, doc.ID))
}

// keyID expands a fragment-only key reference against the document identifier.
func keyID(doc *did.Doc, id string) string {
	if strings.HasPrefix(id, "#") {
		return doc.ID + id
	}

	return id
}
