/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package purpose validates that a linked-data proof satisfies a declared
// purpose: the term matches, the proof is fresh, and the signing key is
// authorized for that purpose in the controller's document.
package purpose

import (
	"fmt"
	"time"

	"github.com/trustmesh/agenttrust/pkg/doc/proof"
)

// SignatureSuite checks the cryptographic signature of a proof. Purpose stages
// only adjudicate authorization and freshness; the suite is carried through so
// a composing verifier can run the byte-level check on the same inputs.
type SignatureSuite interface {
	Accept(signatureType string) bool
}

// ProofPurpose adjudicates the purpose term and freshness of a proof.
type ProofPurpose struct {
	term              string
	date              time.Time
	maxTimestampDelta time.Duration
}

// Opt configures a proof purpose.
type Opt func(*ProofPurpose)

// WithDate sets the reference date used for freshness checks and for stamping
// outgoing proofs. Defaults to the construction time.
func WithDate(date time.Time) Opt {
	return func(pp *ProofPurpose) {
		pp.date = date
	}
}

// WithMaxTimestampDelta enables the freshness check: the proof's creation
// timestamp must lie within the reference date +- delta.
func WithMaxTimestampDelta(delta time.Duration) Opt {
	return func(pp *ProofPurpose) {
		pp.maxTimestampDelta = delta
	}
}

// New creates a ProofPurpose for the given term.
func New(term string, opts ...Opt) *ProofPurpose {
	pp := &ProofPurpose{
		term: term,
		date: time.Now(),
	}

	for _, opt := range opts {
		opt(pp)
	}

	return pp
}

// Term returns the expected purpose term.
func (pp *ProofPurpose) Term() string {
	return pp.term
}

// Match reports whether the proof declares this purpose.
func (pp *ProofPurpose) Match(p proof.Proof) bool {
	return p.StringProperty(proof.PurposeProperty) == pp.term
}

// Validate checks the proof's declared term and, when a delta is configured,
// its freshness against the reference date.
func (pp *ProofPurpose) Validate(p proof.Proof) Result {
	if !pp.Match(p) {
		return invalid(CodePurposeMismatch, fmt.Errorf("expected proof purpose %q, got %q",
			pp.term, p.StringProperty(proof.PurposeProperty)))
	}

	if pp.maxTimestampDelta > 0 {
		created, err := time.Parse(time.RFC3339, p.StringProperty(proof.CreatedProperty))
		if err != nil {
			return invalid(CodeExpired, fmt.Errorf("parse proof created timestamp: %w", err))
		}

		delta := pp.date.Sub(created)
		if delta < 0 {
			delta = -delta
		}

		if delta > pp.maxTimestampDelta {
			return invalid(CodeExpired, fmt.Errorf("proof created %s outside accepted window %s of %s",
				created.Format(time.RFC3339), pp.maxTimestampDelta, pp.date.Format(time.RFC3339)))
		}
	}

	return Result{Valid: true}
}

// Update stamps the purpose term and the reference date onto a copy of the
// outgoing proof. The input proof is not modified.
func (pp *ProofPurpose) Update(p proof.Proof) proof.Proof {
	updated := p.Copy()

	updated[proof.PurposeProperty] = pp.term
	updated[proof.CreatedProperty] = pp.date.UTC().Format(time.RFC3339)

	return updated
}
