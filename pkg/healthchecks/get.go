/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthchecks

import (
	"net/http"

	"github.com/alexliesenfeld/health"

	"github.com/trustmesh/agenttrust/pkg/healthchecks/mongo"
	"github.com/trustmesh/agenttrust/pkg/healthchecks/vdrproxy"
)

type Config struct {
	MongoDBURL  string
	VDRProxyURL string
	HTTPClient  *http.Client
}

func Get(config *Config) []health.Check {
	checks := []health.Check{
		{
			Name:               "mongodb",
			Check:              mongo.New(config.MongoDBURL),
			MaxTimeInError:     1,
			MaxContiguousFails: 1,
		},
	}

	if config.VDRProxyURL != "" {
		checks = append(checks, health.Check{
			Name:               "vdr-proxy",
			Check:              vdrproxy.New(config.VDRProxyURL, config.HTTPClient),
			MaxTimeInError:     1,
			MaxContiguousFails: 1,
		})
	}

	return checks
}
