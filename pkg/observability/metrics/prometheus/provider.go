/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/trustmesh/agenttrust/internal/logfields"
	"github.com/trustmesh/agenttrust/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	httpServer *http.Server
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider.
func NewPrometheusProvider(httpServer *http.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	if err := pp.httpServer.ListenAndServe(); err != nil {
		return fmt.Errorf("start metrics HTTP server: %w", err)
	}

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.httpServer != nil {
		return pp.httpServer.Shutdown(context.Background())
	}

	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for the trust service.
type PromMetrics struct {
	ledgerWriteTime prometheus.Histogram
	keyRotationTime prometheus.Histogram
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		ledgerWriteTime: newLedgerWriteTime(),
		keyRotationTime: newKeyRotationTime(),
	}

	registerMetrics(pm)

	return pm
}

// LedgerWriteTime records the time a ledger write transaction took.
func (pm *PromMetrics) LedgerWriteTime(value time.Duration) {
	pm.ledgerWriteTime.Observe(value.Seconds())

	logger.Debug("ledger write time", logfields.WithDuration(value))
}

// KeyRotationTime records the time a public DID key rotation took.
func (pm *PromMetrics) KeyRotationTime(value time.Duration) {
	pm.keyRotationTime.Observe(value.Seconds())

	logger.Debug("key rotation time", logfields.WithDuration(value))
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.ledgerWriteTime, pm.keyRotationTime,
	)
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newLedgerWriteTime() prometheus.Histogram {
	return newHistogram(
		metrics.Ledger, metrics.LedgerWriteTimeMetric,
		"The time (in seconds) it takes to execute a ledger write transaction.",
		nil,
	)
}

func newKeyRotationTime() prometheus.Histogram {
	return newHistogram(
		metrics.Service, metrics.KeyRotationTimeMetric,
		"The time (in seconds) it takes to rotate the public DID keypair.",
		nil,
	)
}
