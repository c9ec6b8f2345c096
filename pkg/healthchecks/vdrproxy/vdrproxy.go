/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vdrproxy

import (
	"context"
	"fmt"
	"net/http"
)

// New returns a check that verifies the vdr proxy answers on its status endpoint.
func New(url string, httpClient *http.Client) func(ctx context.Context) error {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url+"/status", nil)
		if err != nil {
			return err
		}

		resp, err := httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to reach vdr proxy: %w", err)
		}

		defer func() {
			_ = resp.Body.Close() //nolint:errcheck
		}()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("vdr proxy status check failed: status code %d", resp.StatusCode)
		}

		return nil
	}
}
