/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package vdrproxy implements ledger connectivity against an indy-vdr proxy.
package vdrproxy

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustmesh/agenttrust/internal/logfields"
	"github.com/trustmesh/agenttrust/pkg/ledger"
)

var logger = log.New("vdr-proxy")

const (
	nymTxnType = "1"

	defaultMaxReadRetries = 2
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures Client.
type Config struct {
	HTTPClient httpClient
	URL        string
	// MaxReadRetries bounds the retries of idempotent read requests.
	// Writes are never retried: transaction ordering is ledger-assigned and
	// a blind resubmission risks a double write.
	MaxReadRetries uint64
}

// Client talks to an indy-vdr proxy over HTTP. It implements ledger.Client.
type Client struct {
	httpClient     httpClient
	url            string
	maxReadRetries uint64
}

// New creates a Client.
func New(config *Config) *Client {
	maxRetries := config.MaxReadRetries
	if maxRetries == 0 {
		maxRetries = defaultMaxReadRetries
	}

	return &Client{
		httpClient:     config.HTTPClient,
		url:            config.URL,
		maxReadRetries: maxRetries,
	}
}

// RegisterNym submits a nym transaction binding reg.DID to reg.VerKey and
// reg.Role.
func (c *Client) RegisterNym(ctx context.Context, reg *ledger.NymRegistration) error {
	body, err := nymTxnBody(reg)
	if err != nil {
		return fmt.Errorf("build nym transaction: %w", err)
	}

	if err := c.submitTxn(ctx, "register-nym", body); err != nil {
		return err
	}

	logger.Info("registered nym", logfields.WithDID(reg.DID),
		logfields.WithRole(reg.Role.Name()))

	return nil
}

// RotateKey submits a nym transaction replacing the verification key of did.
func (c *Client) RotateKey(ctx context.Context, did, verKey string) error {
	body, err := nymTxnBody(&ledger.NymRegistration{DID: did, VerKey: verKey})
	if err != nil {
		return fmt.Errorf("build key rotation transaction: %w", err)
	}

	if err := c.submitTxn(ctx, "rotate-key", body); err != nil {
		return err
	}

	logger.Info("rotated nym verification key", logfields.WithDID(did))

	return nil
}

// GetKeyForDID reads the verification key of did. ledger.ErrNotFound is
// returned when the nym has no public verification key.
func (c *Client) GetKeyForDID(ctx context.Context, did string) (string, error) {
	data, err := c.getNymData(ctx, did)
	if err != nil {
		return "", err
	}

	verKey := data.Get("verkey")
	if !verKey.Exists() || verKey.String() == "" {
		return "", fmt.Errorf("verification key of %s: %w", did, ledger.ErrNotFound)
	}

	return verKey.String(), nil
}

// GetNymRoleToken reads the raw role token of did. An empty token means the
// nym holds no ledger-write privilege.
func (c *Client) GetNymRoleToken(ctx context.Context, did string) (string, error) {
	data, err := c.getNymData(ctx, did)
	if err != nil {
		return "", err
	}

	role := data.Get("role")
	if !role.Exists() || role.Type == gjson.Null {
		return "", nil
	}

	return role.String(), nil
}

// GetEndpointForDID reads the endpoint attribute of did for the requested
// category. A missing category is ledger.ErrNotFound, not an error about the
// DID itself.
func (c *Client) GetEndpointForDID(ctx context.Context, did string,
	endpointType ledger.EndpointType) (string, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/attrib/%s/endpoint", c.url, did))
	if err != nil {
		return "", err
	}

	data := gjson.GetBytes(body, "result.data")
	if !data.Exists() || data.Type == gjson.Null {
		return "", fmt.Errorf("endpoint attribute of %s: %w", did, ledger.ErrNotFound)
	}

	// the attrib data is JSON serialized into a string field
	endpoint := gjson.Get(data.String(), "endpoint."+string(endpointType))
	if !endpoint.Exists() || endpoint.String() == "" {
		return "", fmt.Errorf("endpoint of type %s for %s: %w", endpointType, did, ledger.ErrNotFound)
	}

	return endpoint.String(), nil
}

// GetTxnAuthorAgreement reads the active transaction author agreement. A
// ledger without an agreement on record demands no acceptance.
func (c *Client) GetTxnAuthorAgreement(ctx context.Context) (*ledger.TxnAuthorAgreement, error) {
	body, err := c.get(ctx, c.url+"/taa")
	if err != nil {
		return nil, err
	}

	data := gjson.GetBytes(body, "result.data")
	if !data.Exists() || data.Type == gjson.Null || data.Get("text").String() == "" {
		return &ledger.TxnAuthorAgreement{Required: false}, nil
	}

	return &ledger.TxnAuthorAgreement{
		Version:  data.Get("version").String(),
		Text:     data.Get("text").String(),
		Digest:   data.Get("digest").String(),
		Ratified: data.Get("ratification_ts").Int(),
		Required: true,
	}, nil
}

func (c *Client) getNymData(ctx context.Context, did string) (gjson.Result, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/nym/%s", c.url, did))
	if err != nil {
		return gjson.Result{}, err
	}

	data := gjson.GetBytes(body, "result.data")
	if !data.Exists() || data.Type == gjson.Null || data.String() == "" {
		return gjson.Result{}, fmt.Errorf("nym %s: %w", did, ledger.ErrNotFound)
	}

	// GET_NYM replies carry the nym record as JSON serialized into a string
	return gjson.Parse(data.String()), nil
}

// get performs an idempotent read with bounded exponential backoff. Only
// transport-level failures are retried.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %s", ledger.ErrUnavailable, err)
		}

		defer closeResponseBody(resp.Body)

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%w: read response: %s", ledger.ErrUnavailable, err)
		}

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(fmt.Errorf("%s: %w", url, ledger.ErrNotFound))
		case resp.StatusCode != http.StatusOK:
			return backoff.Permanent(fmt.Errorf("vdr proxy returned %d: %s",
				resp.StatusCode, string(body)))
		}

		return nil
	}

	err := backoff.Retry(op,
		backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxReadRetries), ctx))
	if err != nil {
		return nil, err
	}

	return body, nil
}

// submitTxn performs a write. It is executed exactly once.
func (c *Client) submitTxn(ctx context.Context, operation string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/txn", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create submit request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ledger.ErrUnavailable, err)
	}

	defer closeResponseBody(resp.Body)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %s", ledger.ErrUnavailable, err)
	}

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusForbidden {
		reason := gjson.GetBytes(respBody, "reason").String()
		if reason == "" {
			reason = string(respBody)
		}

		return ledger.NewTransactionError(operation, fmt.Errorf("ledger rejected request: %s", reason))
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("vdr proxy returned %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

func nymTxnBody(reg *ledger.NymRegistration) ([]byte, error) {
	body, err := sjson.SetBytes([]byte(`{}`), "operation.type", nymTxnType)
	if err != nil {
		return nil, err
	}

	body, err = sjson.SetBytes(body, "operation.dest", reg.DID)
	if err != nil {
		return nil, err
	}

	body, err = sjson.SetBytes(body, "operation.verkey", reg.VerKey)
	if err != nil {
		return nil, err
	}

	if token := reg.Role.Token(); token != "" {
		body, err = sjson.SetBytes(body, "operation.role", token)
		if err != nil {
			return nil, err
		}
	}

	if reg.Alias != "" {
		body, err = sjson.SetBytes(body, "operation.alias", reg.Alias)
		if err != nil {
			return nil, err
		}
	}

	return body, nil
}

func closeResponseBody(respBody io.Closer) {
	if err := respBody.Close(); err != nil {
		logger.Error("Failed to close response body", log.WithError(err))
	}
}
