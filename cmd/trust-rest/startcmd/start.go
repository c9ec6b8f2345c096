/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"net/http"

	"github.com/alexliesenfeld/health"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel"

	"github.com/trustmesh/agenttrust/cmd/common"
	"github.com/trustmesh/agenttrust/pkg/healthchecks"
	"github.com/trustmesh/agenttrust/pkg/kms/keycreator"
	"github.com/trustmesh/agenttrust/pkg/ledger/vdrproxy"
	"github.com/trustmesh/agenttrust/pkg/observability/health/healthutil"
	"github.com/trustmesh/agenttrust/pkg/observability/metrics"
	"github.com/trustmesh/agenttrust/pkg/observability/metrics/noop"
	"github.com/trustmesh/agenttrust/pkg/observability/metrics/prometheus"
	"github.com/trustmesh/agenttrust/pkg/observability/tracing"
	"github.com/trustmesh/agenttrust/pkg/restapi/resterr"
	ledgerctl "github.com/trustmesh/agenttrust/pkg/restapi/v1/ledger"
	"github.com/trustmesh/agenttrust/pkg/restapi/v1/mw"
	"github.com/trustmesh/agenttrust/pkg/restapi/v1/version"
	"github.com/trustmesh/agenttrust/pkg/service/didgovernance"
	"github.com/trustmesh/agenttrust/pkg/service/taa"
	"github.com/trustmesh/agenttrust/pkg/storage/mongodb"
	"github.com/trustmesh/agenttrust/pkg/storage/mongodb/taaacceptancestore"
)

var logger = log.New("trust-rest")

type server interface {
	ListenAndServe(host string, router http.Handler) error
}

// HTTPServer represents an actual HTTP server implementation.
type HTTPServer struct{}

// ListenAndServe starts the server using the standard Go HTTP server implementation.
func (s *HTTPServer) ListenAndServe(host string, router http.Handler) error {
	return http.ListenAndServe(host, router) //nolint:gosec
}

type options struct {
	version       string
	serverVersion string
}

// Opt configures the start command.
type Opt func(*options)

// WithVersion sets the build version reported by the version endpoint.
func WithVersion(version string) Opt {
	return func(o *options) {
		o.version = version
	}
}

// WithServerVersion sets the server version reported by the version endpoint.
func WithServerVersion(serverVersion string) Opt {
	return func(o *options) {
		o.serverVersion = serverVersion
	}
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(srv server, opts ...Opt) *cobra.Command {
	startCmd := createStartCmd(srv, opts...)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(srv server, opts ...Opt) *cobra.Command {
	o := &options{}

	for _, opt := range opts {
		opt(o)
	}

	return &cobra.Command{
		Use:   "start",
		Short: "Start trust-rest",
		Long:  "Start the agent trust REST server",
		RunE: func(cmd *cobra.Command, args []string) error {
			parameters, err := getStartupParameters(cmd)
			if err != nil {
				return err
			}

			common.SetDefaultLogLevel(logger, parameters.logLevel)

			return startServer(parameters, o, srv)
		},
	}
}

func startServer(parameters *startupParameters, o *options, srv server) error {
	shutdownTracer, _, err := tracing.Initialize(parameters.tracingExporter, tracingServiceName)
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}

	defer shutdownTracer()

	metricsProvider, serviceMetrics, err := createMetricsProvider(parameters)
	if err != nil {
		return err
	}

	if metricsProvider != nil {
		go func() {
			if createErr := metricsProvider.Create(); createErr != nil {
				logger.Error("Failed to start metrics provider", log.WithError(createErr))
			}
		}()
	}

	mongoClientOpts := []mongodb.ClientOpt{
		mongodb.WithTimeout(parameters.dbParameters.databaseTimeout),
	}

	if parameters.tracingExporter != tracing.None {
		mongoClientOpts = append(mongoClientOpts, mongodb.WithTraceProvider(otel.GetTracerProvider()))
	}

	mongoClient, err := mongodb.New(parameters.dbParameters.databaseURL,
		parameters.dbParameters.databasePrefix+defaultDatabaseName, mongoClientOpts...)
	if err != nil {
		return fmt.Errorf("create mongodb client: %w", err)
	}

	defer func() {
		if closeErr := mongoClient.Close(); closeErr != nil {
			logger.Warn("Failed to close mongodb client", log.WithError(closeErr))
		}
	}()

	vdrProxyClient := vdrproxy.New(&vdrproxy.Config{
		HTTPClient:     http.DefaultClient,
		URL:            parameters.vdrProxyURL,
		MaxReadRetries: parameters.vdrProxyMaxRetries,
	})

	taaService := taa.New(&taa.Config{
		LedgerClient: vdrProxyClient,
		Store:        taaacceptancestore.NewStore(mongoClient),
	})

	governanceService := didgovernance.New(&didgovernance.Config{
		LedgerClient: vdrProxyClient,
		TAAService:   taaService,
		KeyCreator:   keycreator.New(),
		PublicDID:    parameters.publicDID,
		PublicVerKey: parameters.publicDIDVerKey,
		Metrics:      serviceMetrics,
	})

	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = resterr.HTTPErrorHandler

	router.Use(echomw.Recover())

	if parameters.apiToken != "" {
		router.Use(mw.APIKeyAuth(parameters.apiToken))
	}

	version.NewController(router, version.Config{
		Version:       o.version,
		ServerVersion: o.serverVersion,
	})

	ledgerctl.RegisterHandlers(router, ledgerctl.NewController(&ledgerctl.Config{
		GovernanceService: governanceService,
		TAAService:        taaService,
		LedgerType:        parameters.ledgerType,
	}))

	registerHealthCheck(router, parameters)

	logger.Info("Starting trust-rest server", log.WithURL(parameters.hostURL))

	return srv.ListenAndServe(parameters.hostURL, router)
}

func createMetricsProvider(parameters *startupParameters) (metrics.Provider, metrics.Metrics, error) {
	switch parameters.metricsProviderName {
	case "":
		return nil, noop.GetMetrics(), nil
	case metricsProviderProm:
		metricsHandler := prometheus.NewHandler()

		mux := http.NewServeMux()
		mux.Handle(metricsHandler.Path(), metricsHandler.Handler())

		provider := prometheus.NewPrometheusProvider(&http.Server{ //nolint:gosec
			Addr:    parameters.promHTTPURL,
			Handler: mux,
		})

		return provider, provider.Metrics(), nil
	default:
		return nil, nil, fmt.Errorf("unsupported metrics provider: %s", parameters.metricsProviderName)
	}
}

func registerHealthCheck(router *echo.Echo, parameters *startupParameters) {
	responseTimes := map[string]healthutil.ResponseTimeState{}

	opts := []health.CheckerOption{
		health.WithCacheDuration(healthCheckCacheExpiry),
		health.WithTimeout(healthCheckExecTimeout),
		health.WithInterceptors(healthutil.ResponseTimeInterceptor(responseTimes)),
	}

	for _, check := range healthchecks.Get(&healthchecks.Config{
		MongoDBURL:  parameters.dbParameters.databaseURL,
		VDRProxyURL: parameters.vdrProxyURL,
		HTTPClient:  http.DefaultClient,
	}) {
		opts = append(opts, health.WithCheck(check))
	}

	router.GET("/healthcheck", echo.WrapHandler(health.NewHandler(health.NewChecker(opts...),
		health.WithResultWriter(healthutil.NewJSONResultWriter(responseTimes)))))
}
