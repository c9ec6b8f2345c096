/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package ledger -source=controller.go -mock_names governanceService=MockGovernanceService,taaService=MockTAAService

// Package ledger exposes the ledger administration surface: nym registration,
// DID lookups, key rotation and transaction author agreement handling.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	ledgerapi "github.com/trustmesh/agenttrust/pkg/ledger"
	"github.com/trustmesh/agenttrust/pkg/ledger/role"
	"github.com/trustmesh/agenttrust/pkg/restapi/resterr"
	"github.com/trustmesh/agenttrust/pkg/restapi/v1/util"
	"github.com/trustmesh/agenttrust/pkg/service/didgovernance"
	"github.com/trustmesh/agenttrust/pkg/service/taa"
)

// LedgerTypeIndy is the only ledger type that supports agreement acceptance.
const LedgerTypeIndy = "indy"

type governanceService interface {
	RegisterNym(ctx context.Context, did, verKey, roleToken, alias string) (*ledgerapi.NymRegistration, error)
	GetVerificationKey(ctx context.Context, did string) (string, error)
	GetServiceEndpoint(ctx context.Context, did string, endpointType ledgerapi.EndpointType) (string, error)
	GetRole(ctx context.Context, did string) (role.Role, error)
	RotatePublicDIDKeyPair(ctx context.Context) error
}

type taaService interface {
	CurrentAgreement(ctx context.Context) (*ledgerapi.TxnAuthorAgreement, error)
	LatestAcceptance(ctx context.Context) (*ledgerapi.TAAAcceptance, error)
	Accept(ctx context.Context, agreement *ledgerapi.TxnAuthorAgreement,
		mechanism string) (*ledgerapi.TAAAcceptance, error)
}

// Config configures Controller. A nil GovernanceService or TAAService means
// no ledger binding is configured: every operation answers forbidden.
type Config struct {
	GovernanceService governanceService
	TAAService        taaService
	LedgerType        string
}

// Controller handles the /ledger admin routes.
type Controller struct {
	governanceService governanceService
	taaService        taaService
	ledgerType        string
}

// NewController creates Controller.
func NewController(config *Config) *Controller {
	return &Controller{
		governanceService: config.GovernanceService,
		taaService:        config.TAAService,
		ledgerType:        config.LedgerType,
	}
}

// RegisterHandlers binds the controller's routes on the given echo router.
func RegisterHandlers(router *echo.Echo, c *Controller) {
	router.POST("/ledger/register-nym", c.RegisterNym)
	router.GET("/ledger/did-verkey", c.GetDIDVerKey)
	router.GET("/ledger/did-endpoint", c.GetDIDEndpoint)
	router.GET("/ledger/get-nym-role", c.GetNymRole)
	router.PATCH("/ledger/rotate-public-did-keypair", c.RotatePublicDIDKeyPair)
	router.GET("/ledger/taa", c.GetTAA)
	router.POST("/ledger/taa/accept", c.AcceptTAA)
}

// RegisterNym registers a nym on the ledger.
// POST /ledger/register-nym?did=&verkey=&role=&alias=.
func (c *Controller) RegisterNym(ctx echo.Context) error {
	if err := c.checkLedgerBinding(); err != nil {
		return err
	}

	did := ctx.QueryParam("did")
	if did == "" {
		return resterr.NewValidationError(resterr.BadRequest, "did",
			errors.New("request query must include did"))
	}

	verKey := ctx.QueryParam("verkey")
	if verKey == "" {
		return resterr.NewValidationError(resterr.BadRequest, "verkey",
			errors.New("request query must include verkey"))
	}

	_, err := c.governanceService.RegisterNym(ctx.Request().Context(), did, verKey,
		ctx.QueryParam("role"), ctx.QueryParam("alias"))
	if err != nil {
		return mapServiceError(err)
	}

	return util.WriteOutput(ctx)(&RegisterNymResponse{Success: true}, nil)
}

// GetDIDVerKey returns the verification key registered for a DID.
// GET /ledger/did-verkey?did=.
func (c *Controller) GetDIDVerKey(ctx echo.Context) error {
	if err := c.checkLedgerBinding(); err != nil {
		return err
	}

	did := ctx.QueryParam("did")
	if did == "" {
		return resterr.NewValidationError(resterr.BadRequest, "did",
			errors.New("request query must include did"))
	}

	verKey, err := c.governanceService.GetVerificationKey(ctx.Request().Context(), did)
	if err != nil {
		return mapServiceError(err)
	}

	return util.WriteOutput(ctx)(&DIDVerKeyResponse{VerKey: verKey}, nil)
}

// GetDIDEndpoint returns the endpoint of the requested type published by a DID.
// GET /ledger/did-endpoint?did=&endpoint_type=.
func (c *Controller) GetDIDEndpoint(ctx echo.Context) error {
	if err := c.checkLedgerBinding(); err != nil {
		return err
	}

	did := ctx.QueryParam("did")
	if did == "" {
		return resterr.NewValidationError(resterr.BadRequest, "did",
			errors.New("request query must include did"))
	}

	endpointType, err := ledgerapi.ParseEndpointType(ctx.QueryParam("endpoint_type"))
	if err != nil {
		return resterr.NewValidationError(resterr.InvalidValue, "endpoint_type", err)
	}

	endpoint, err := c.governanceService.GetServiceEndpoint(ctx.Request().Context(), did, endpointType)
	if err != nil {
		return mapServiceError(err)
	}

	return util.WriteOutput(ctx)(&DIDEndpointResponse{Endpoint: endpoint}, nil)
}

// GetNymRole returns the role currently registered for a DID.
// GET /ledger/get-nym-role?did=.
func (c *Controller) GetNymRole(ctx echo.Context) error {
	if err := c.checkLedgerBinding(); err != nil {
		return err
	}

	did := ctx.QueryParam("did")
	if did == "" {
		return resterr.NewValidationError(resterr.BadRequest, "did",
			errors.New("request query must include did"))
	}

	nymRole, err := c.governanceService.GetRole(ctx.Request().Context(), did)
	if err != nil {
		return mapServiceError(err)
	}

	return util.WriteOutput(ctx)(&NymRoleResponse{Role: nymRole.Name()}, nil)
}

// RotatePublicDIDKeyPair rotates the agent's public DID keypair.
// PATCH /ledger/rotate-public-did-keypair.
func (c *Controller) RotatePublicDIDKeyPair(ctx echo.Context) error {
	if err := c.checkLedgerBinding(); err != nil {
		return err
	}

	if err := c.governanceService.RotatePublicDIDKeyPair(ctx.Request().Context()); err != nil {
		return mapServiceError(err)
	}

	return util.WriteOutput(ctx)(map[string]interface{}{}, nil)
}

// GetTAA returns the active transaction author agreement and this agent's
// acceptance state.
// GET /ledger/taa.
func (c *Controller) GetTAA(ctx echo.Context) error {
	if err := c.checkLedgerBinding(); err != nil {
		return err
	}

	agreement, err := c.taaService.CurrentAgreement(ctx.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	acceptance, err := c.taaService.LatestAcceptance(ctx.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	result := TAAResult{}

	if agreement != nil {
		result.TAARequired = agreement.Required
		result.TAARecord = &TAARecord{
			Version:  agreement.Version,
			Text:     agreement.Text,
			Digest:   agreement.Digest,
			Ratified: agreement.Ratified,
		}
	}

	if acceptance != nil {
		result.TAAAccepted = &TAAAcceptance{
			Mechanism: acceptance.Mechanism,
			Time:      acceptance.Time,
		}
	}

	return util.WriteOutput(ctx)(&TAAResponse{Result: result}, nil)
}

// AcceptTAA records acceptance of the transaction author agreement. Only
// supported on indy ledgers.
// POST /ledger/taa/accept.
func (c *Controller) AcceptTAA(ctx echo.Context) error {
	if err := c.checkLedgerBinding(); err != nil {
		return err
	}

	if c.ledgerType != LedgerTypeIndy {
		return resterr.NewCustomError(resterr.Forbidden,
			fmt.Errorf("ledger type %q does not support agreement acceptance", c.ledgerType))
	}

	var body AcceptTAARequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	if body.Version == "" {
		return resterr.NewValidationError(resterr.BadRequest, "version",
			errors.New("request body must include version"))
	}

	if body.Text == "" {
		return resterr.NewValidationError(resterr.BadRequest, "text",
			errors.New("request body must include text"))
	}

	if body.Mechanism == "" {
		return resterr.NewValidationError(resterr.BadRequest, "mechanism",
			errors.New("request body must include mechanism"))
	}

	agreement, err := c.taaService.CurrentAgreement(ctx.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	accepted := &ledgerapi.TxnAuthorAgreement{
		Version: body.Version,
		Text:    body.Text,
	}

	if agreement != nil {
		accepted.Required = agreement.Required
	}

	if _, err = c.taaService.Accept(ctx.Request().Context(), accepted, body.Mechanism); err != nil {
		return mapServiceError(err)
	}

	return util.WriteOutput(ctx)(map[string]interface{}{}, nil)
}

// checkLedgerBinding answers forbidden when no ledger binding is configured.
// Checked before any operation-specific logic.
func (c *Controller) checkLedgerBinding() error {
	if c.governanceService == nil || c.taaService == nil {
		return resterr.NewCustomError(resterr.Forbidden,
			errors.New("no ledger binding is configured"))
	}

	return nil
}

func mapServiceError(err error) error {
	var txErr *ledgerapi.TransactionError

	switch {
	case errors.Is(err, didgovernance.ErrInvalidDID):
		return resterr.NewValidationError(resterr.InvalidValue, "did", err)
	case errors.Is(err, didgovernance.ErrInvalidVerKey):
		return resterr.NewValidationError(resterr.InvalidValue, "verkey", err)
	case errors.Is(err, didgovernance.ErrInvalidRole):
		return resterr.NewValidationError(resterr.InvalidValue, "role", err)
	case errors.Is(err, didgovernance.ErrTransactionNotAuthorized),
		errors.Is(err, taa.ErrNotAccepted),
		errors.As(err, &txErr):
		return resterr.NewCustomError(resterr.Forbidden, err)
	case errors.Is(err, ledgerapi.ErrNotFound):
		return resterr.NewCustomError(resterr.DoesntExist, err)
	default:
		// remaining ledger, wallet and storage failures
		return resterr.NewCustomError(resterr.BadRequest, err)
	}
}
