/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination taa_service_mocks_test.go -self_package mocks -package taa -source=taa_service.go -mock_names ledgerClient=MockLedgerClient,acceptanceStore=MockAcceptanceStore

// Package taa tracks the ledger's transaction author agreement and the
// acceptance evidence that gates ledger writes.
package taa

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustmesh/agenttrust/internal/logfields"
	"github.com/trustmesh/agenttrust/pkg/ledger"
)

var logger = log.New("taa-service")

var (
	// ErrNotAccepted indicates the active agreement has no matching
	// acceptance on record. A stale acceptance (agreement changed since it
	// was recorded) is not accepted.
	ErrNotAccepted = errors.New("transaction author agreement has not been accepted")

	// ErrNotRequired indicates acceptance was offered for an agreement that
	// demands none. Such an acceptance is rejected rather than silently
	// recorded.
	ErrNotRequired = errors.New("transaction author agreement acceptance is not required")
)

type ledgerClient interface {
	GetTxnAuthorAgreement(ctx context.Context) (*ledger.TxnAuthorAgreement, error)
}

type acceptanceStore interface {
	// GetLatest returns the most recent acceptance on record, or nil when
	// none exists.
	GetLatest(ctx context.Context) (*ledger.TAAAcceptance, error)
	Save(ctx context.Context, acceptance *ledger.TAAAcceptance) error
}

// Config configures Service.
type Config struct {
	LedgerClient ledgerClient
	Store        acceptanceStore
	Now          func() time.Time // defaults to time.Now
}

// Service manages transaction author agreement acceptance for this agent.
type Service struct {
	ledgerClient ledgerClient
	store        acceptanceStore
	now          func() time.Time
}

// New creates Service.
func New(config *Config) *Service {
	now := config.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		ledgerClient: config.LedgerClient,
		store:        config.Store,
		now:          now,
	}
}

// ComputeDigest computes the deterministic content digest of an agreement.
// Identical version and text always produce an identical digest, which is
// what makes acceptance staleness checks possible.
func ComputeDigest(version, text string) string {
	digest := sha256.Sum256([]byte(version + text))

	return hex.EncodeToString(digest[:])
}

// CurrentAgreement reads the ledger's active agreement.
func (s *Service) CurrentAgreement(ctx context.Context) (*ledger.TxnAuthorAgreement, error) {
	agreement, err := s.ledgerClient.GetTxnAuthorAgreement(ctx)
	if err != nil {
		return nil, fmt.Errorf("get transaction author agreement: %w", err)
	}

	return agreement, nil
}

// LatestAcceptance returns the most recent acceptance on record for this
// agent, or nil when none exists.
func (s *Service) LatestAcceptance(ctx context.Context) (*ledger.TAAAcceptance, error) {
	acceptance, err := s.store.GetLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("get latest acceptance: %w", err)
	}

	return acceptance, nil
}

// RequireAccepted verifies that the given agreement is covered by the latest
// acceptance on record. Agreements that demand no acceptance always pass.
func (s *Service) RequireAccepted(ctx context.Context, agreement *ledger.TxnAuthorAgreement) error {
	if agreement == nil || !agreement.Required {
		return nil
	}

	acceptance, err := s.store.GetLatest(ctx)
	if err != nil {
		return fmt.Errorf("get latest acceptance: %w", err)
	}

	if acceptance == nil {
		return ErrNotAccepted
	}

	if acceptance.Digest != ComputeDigest(agreement.Version, agreement.Text) {
		// the agreement changed since acceptance was recorded
		return ErrNotAccepted
	}

	return nil
}

// Accept records acceptance of the given agreement. The caller must have
// checked that the agreement demands acceptance.
func (s *Service) Accept(ctx context.Context, agreement *ledger.TxnAuthorAgreement,
	mechanism string) (*ledger.TAAAcceptance, error) {
	if agreement == nil || !agreement.Required {
		return nil, ErrNotRequired
	}

	acceptance := &ledger.TAAAcceptance{
		Digest:    ComputeDigest(agreement.Version, agreement.Text),
		Mechanism: mechanism,
		// the ledger only admits date-precision acceptance times
		Time: startOfDayUTC(s.now()).Unix(),
	}

	if err := s.store.Save(ctx, acceptance); err != nil {
		return nil, fmt.Errorf("save acceptance: %w", err)
	}

	logger.Info("recorded transaction author agreement acceptance",
		logfields.WithTAAVersion(agreement.Version),
		logfields.WithTAADigest(acceptance.Digest),
		logfields.WithAcceptanceMechanism(mechanism))

	return acceptance, nil
}

func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
