/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination didgovernance_service_mocks_test.go -self_package mocks -package didgovernance -source=didgovernance_service.go -mock_names ledgerClient=MockLedgerClient,taaService=MockTAAService,keyCreator=MockKeyCreator

// Package didgovernance governs which identities may be written to the ledger
// and manages the agent's own public DID key material.
package didgovernance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/btcsuite/btcutil/base58"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustmesh/agenttrust/internal/logfields"
	"github.com/trustmesh/agenttrust/pkg/ledger"
	"github.com/trustmesh/agenttrust/pkg/ledger/role"
	"github.com/trustmesh/agenttrust/pkg/observability/metrics"
	"github.com/trustmesh/agenttrust/pkg/observability/metrics/noop"
	"github.com/trustmesh/agenttrust/pkg/service/taa"
)

var logger = log.New("didgovernance-service")

var (
	// ErrInvalidDID indicates a malformed DID. Raised before any ledger call.
	ErrInvalidDID = errors.New("invalid DID")

	// ErrInvalidVerKey indicates a malformed verification key. Raised before
	// any ledger call.
	ErrInvalidVerKey = errors.New("invalid verification key")

	// ErrInvalidRole indicates a role token that resolves to no known role.
	ErrInvalidRole = errors.New("invalid role")

	// ErrTransactionNotAuthorized indicates the ledger write was refused as a
	// policy violation: outstanding agreement acceptance or a rejected
	// transaction.
	ErrTransactionNotAuthorized = errors.New("transaction not authorized")

	// ErrNoPublicDID indicates the agent has no public DID configured.
	ErrNoPublicDID = errors.New("no public DID configured")
)

const sovDIDPrefix = "did:sov:"

const (
	didLength             = 16
	verKeyLength          = 32
	verKeyAbbreviatedMark = "~"
)

type ledgerClient interface {
	RegisterNym(ctx context.Context, registration *ledger.NymRegistration) error
	RotateKey(ctx context.Context, did, verKey string) error
	GetKeyForDID(ctx context.Context, did string) (string, error)
	GetEndpointForDID(ctx context.Context, did string, endpointType ledger.EndpointType) (string, error)
	GetNymRoleToken(ctx context.Context, did string) (string, error)
}

type taaService interface {
	CurrentAgreement(ctx context.Context) (*ledger.TxnAuthorAgreement, error)
	RequireAccepted(ctx context.Context, agreement *ledger.TxnAuthorAgreement) error
}

type keyCreator interface {
	// CreateKeyPair generates a new signing keypair in the agent's wallet and
	// returns the base58 verification key.
	CreateKeyPair(ctx context.Context) (string, error)
}

// Config configures Service.
type Config struct {
	LedgerClient ledgerClient
	TAAService   taaService
	KeyCreator   keyCreator

	// PublicDID and PublicVerKey identify the agent itself on the ledger.
	// Optional; rotation requires them.
	PublicDID    string
	PublicVerKey string

	Metrics metrics.Metrics
}

// Service governs ledger identity writes and the agent's public DID keypair.
type Service struct {
	ledgerClient ledgerClient
	taaService   taaService
	keyCreator   keyCreator
	metrics      metrics.Metrics

	publicDID string

	keyMutex     sync.RWMutex
	activeVerKey string
}

// New creates Service.
func New(config *Config) *Service {
	m := config.Metrics
	if m == nil {
		m = noop.GetMetrics()
	}

	return &Service{
		ledgerClient: config.LedgerClient,
		taaService:   config.TAAService,
		keyCreator:   config.KeyCreator,
		metrics:      m,
		publicDID:    config.PublicDID,
		activeVerKey: config.PublicVerKey,
	}
}

// RegisterNym registers a DID with its verification key and an optional role
// on the ledger. Input is validated before any network call; an outstanding
// agreement acceptance or a ledger rejection surfaces as
// ErrTransactionNotAuthorized.
func (s *Service) RegisterNym(ctx context.Context, did, verKey, roleToken,
	alias string) (*ledger.NymRegistration, error) {
	nymDID, err := normalizeDID(did)
	if err != nil {
		return nil, err
	}

	if err = validateVerKey(verKey); err != nil {
		return nil, err
	}

	nymRole := role.FromToken(roleToken)
	if nymRole == role.Unknown {
		return nil, fmt.Errorf("%w: unrecognized role %q", ErrInvalidRole, roleToken)
	}

	if err = s.requireAgreementAccepted(ctx); err != nil {
		return nil, err
	}

	registration := &ledger.NymRegistration{
		DID:    nymDID,
		VerKey: verKey,
		Role:   nymRole,
		Alias:  alias,
	}

	writeStarted := time.Now()

	if err = s.ledgerClient.RegisterNym(ctx, registration); err != nil {
		return nil, asWriteError("register nym", err)
	}

	s.metrics.LedgerWriteTime(time.Since(writeStarted))

	logger.Info("registered nym",
		logfields.WithDID(nymDID),
		logfields.WithRole(nymRole.Name()),
		logfields.WithAlias(alias))

	return registration, nil
}

// GetVerificationKey returns the public verification key registered for the
// DID. A DID without a public key resolves to ledger.ErrNotFound.
func (s *Service) GetVerificationKey(ctx context.Context, did string) (string, error) {
	nymDID, err := normalizeDID(did)
	if err != nil {
		return "", err
	}

	verKey, err := s.ledgerClient.GetKeyForDID(ctx, nymDID)
	if err != nil {
		return "", fmt.Errorf("get key for DID: %w", err)
	}

	if verKey == "" {
		return "", fmt.Errorf("%w: DID %s has no public verification key", ledger.ErrNotFound, nymDID)
	}

	return verKey, nil
}

// GetServiceEndpoint returns the endpoint of the given type published by the
// DID. Absence of the requested type is ledger.ErrNotFound, not a failure of
// the DID itself.
func (s *Service) GetServiceEndpoint(ctx context.Context, did string,
	endpointType ledger.EndpointType) (string, error) {
	nymDID, err := normalizeDID(did)
	if err != nil {
		return "", err
	}

	endpoint, err := s.ledgerClient.GetEndpointForDID(ctx, nymDID, endpointType)
	if err != nil {
		return "", fmt.Errorf("get endpoint for DID: %w", err)
	}

	return endpoint, nil
}

// GetRole resolves the role currently registered for the DID. Raw ledger role
// codes are translated through the role registry, never returned.
func (s *Service) GetRole(ctx context.Context, did string) (role.Role, error) {
	nymDID, err := normalizeDID(did)
	if err != nil {
		return role.Unknown, err
	}

	token, err := s.ledgerClient.GetNymRoleToken(ctx, nymDID)
	if err != nil {
		return role.Unknown, asWriteError("get nym role", err)
	}

	nymRole := role.FromToken(token)
	if nymRole == role.Unknown {
		return role.Unknown, fmt.Errorf("%w: ledger returned unrecognized role token %q",
			ErrInvalidRole, token)
	}

	return nymRole, nil
}

// RotatePublicDIDKeyPair generates a new keypair for the agent's public DID,
// submits the rotation to the ledger and swaps the locally held active key.
// The swap happens only after ledger confirmation: a failed submission leaves
// the previous key active.
func (s *Service) RotatePublicDIDKeyPair(ctx context.Context) error {
	if s.publicDID == "" {
		return ErrNoPublicDID
	}

	s.keyMutex.Lock()
	defer s.keyMutex.Unlock()

	nextVerKey, err := s.keyCreator.CreateKeyPair(ctx)
	if err != nil {
		return fmt.Errorf("create keypair: %w", err)
	}

	if err = s.requireAgreementAccepted(ctx); err != nil {
		return err
	}

	rotationStarted := time.Now()

	if err = s.ledgerClient.RotateKey(ctx, s.publicDID, nextVerKey); err != nil {
		return asWriteError("rotate key", err)
	}

	s.activeVerKey = nextVerKey

	s.metrics.KeyRotationTime(time.Since(rotationStarted))

	logger.Info("rotated public DID keypair", logfields.WithDID(s.publicDID))

	return nil
}

// PublicDID returns the agent's configured public DID, or empty.
func (s *Service) PublicDID() string {
	return s.publicDID
}

// ActiveVerKey returns the verification key currently confirmed for the
// agent's public DID.
func (s *Service) ActiveVerKey() string {
	s.keyMutex.RLock()
	defer s.keyMutex.RUnlock()

	return s.activeVerKey
}

func (s *Service) requireAgreementAccepted(ctx context.Context) error {
	agreement, err := s.taaService.CurrentAgreement(ctx)
	if err != nil {
		return fmt.Errorf("get current agreement: %w", err)
	}

	if err = s.taaService.RequireAccepted(ctx, agreement); err != nil {
		if errors.Is(err, taa.ErrNotAccepted) {
			return fmt.Errorf("%w: %s", ErrTransactionNotAuthorized, err.Error())
		}

		return fmt.Errorf("check agreement acceptance: %w", err)
	}

	return nil
}

// asWriteError maps a ledger transaction rejection to
// ErrTransactionNotAuthorized; other failures keep their identity.
func asWriteError(op string, err error) error {
	var txErr *ledger.TransactionError

	if errors.As(err, &txErr) {
		return fmt.Errorf("%w: %s", ErrTransactionNotAuthorized, txErr.Error())
	}

	return fmt.Errorf("%s: %w", op, err)
}

// normalizeDID strips the did:sov prefix and checks the remaining identifier
// is base58 of the expected length.
func normalizeDID(did string) (string, error) {
	nymDID := strings.TrimPrefix(did, sovDIDPrefix)

	if len(base58.Decode(nymDID)) != didLength {
		return "", fmt.Errorf("%w: %q is not a base58 identifier of %d bytes", ErrInvalidDID, did, didLength)
	}

	return nymDID, nil
}

// validateVerKey accepts a full base58 verification key or an abbreviated one
// prefixed with "~".
func validateVerKey(verKey string) error {
	if abbreviated := strings.TrimPrefix(verKey, verKeyAbbreviatedMark); abbreviated != verKey {
		if len(base58.Decode(abbreviated)) != didLength {
			return fmt.Errorf("%w: abbreviated key %q is not base58 of %d bytes",
				ErrInvalidVerKey, verKey, didLength)
		}

		return nil
	}

	if len(base58.Decode(verKey)) != verKeyLength {
		return fmt.Errorf("%w: %q is not a base58 key of %d bytes", ErrInvalidVerKey, verKey, verKeyLength)
	}

	return nil
}
