/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/trustmesh/agenttrust/cmd/common"
	"github.com/trustmesh/agenttrust/pkg/observability/tracing"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the trust-rest instance on. Format: HostName:Port."
	hostURLEnvKey        = "TRUST_REST_HOST_URL"

	vdrProxyURLFlagName      = "vdr-proxy-url"
	vdrProxyURLFlagShorthand = "r"
	vdrProxyURLFlagUsage     = "URL of the indy-vdr proxy used to reach the ledger. Format: http://<HOST>:<PORT>. " +
		commonEnvVarUsageText + vdrProxyURLEnvKey
	vdrProxyURLEnvKey = "TRUST_REST_VDR_PROXY_URL"

	vdrProxyMaxRetriesFlagName  = "vdr-proxy-max-read-retries"
	vdrProxyMaxRetriesFlagUsage = "Maximum number of retries for idempotent ledger reads (default: 3). " +
		commonEnvVarUsageText + vdrProxyMaxRetriesEnvKey
	vdrProxyMaxRetriesEnvKey = "TRUST_REST_VDR_PROXY_MAX_READ_RETRIES"

	ledgerTypeFlagName  = "ledger-type"
	ledgerTypeFlagUsage = "The type of the bound ledger (default: indy). Agreement acceptance is only " +
		"supported on indy ledgers. " + commonEnvVarUsageText + ledgerTypeEnvKey
	ledgerTypeEnvKey = "TRUST_REST_LEDGER_TYPE"

	publicDIDFlagName  = "public-did"
	publicDIDFlagUsage = "The agent's own public DID on the ledger. Optional; key rotation requires it. " +
		commonEnvVarUsageText + publicDIDEnvKey
	publicDIDEnvKey = "TRUST_REST_PUBLIC_DID"

	publicDIDVerKeyFlagName  = "public-did-verkey"
	publicDIDVerKeyFlagUsage = "Verification key currently registered for the agent's public DID. " +
		commonEnvVarUsageText + publicDIDVerKeyEnvKey
	publicDIDVerKeyEnvKey = "TRUST_REST_PUBLIC_DID_VERKEY"

	databaseURLFlagName      = "database-url"
	databaseURLFlagShorthand = "d"
	databaseURLFlagUsage     = "MongoDB URL with credentials if required. " +
		"Example: 'mongodb://mongodb.example.com:27017'. " + commonEnvVarUsageText + databaseURLEnvKey
	databaseURLEnvKey = "DATABASE_URL"

	databasePrefixFlagName  = "database-prefix"
	databasePrefixFlagUsage = "An optional prefix to be used when creating and retrieving underlying databases. " +
		commonEnvVarUsageText + databasePrefixEnvKey
	databasePrefixEnvKey = "DATABASE_PREFIX"

	databaseTimeoutFlagName  = "database-timeout"
	databaseTimeoutFlagUsage = "Total time in seconds to wait until the datasource is available before giving up. " +
		commonEnvVarUsageText + databaseTimeoutEnvKey
	databaseTimeoutEnvKey = "DATABASE_TIMEOUT"

	metricsProviderFlagName         = "metrics-provider-name"
	metricsProviderEnvKey           = "TRUST_METRICS_PROVIDER_NAME"
	allowedMetricsProviderFlagUsage = "The metrics provider name (for example: 'prometheus' etc.). " +
		commonEnvVarUsageText + metricsProviderEnvKey

	promHTTPURLFlagName             = "prom-http-url"
	promHTTPURLEnvKey               = "TRUST_PROM_HTTP_URL"
	allowedPromHTTPURLFlagNameUsage = "URL that exposes the prometheus metrics endpoint. Format: HostName:Port. " +
		commonEnvVarUsageText + promHTTPURLEnvKey

	apiTokenFlagName  = "api-token"
	apiTokenFlagUsage = "Check authorization header in api requests for given token. " +
		commonEnvVarUsageText + apiTokenEnvKey
	apiTokenEnvKey = "TRUST_REST_API_TOKEN" //nolint: gosec

	tracingExporterFlagName  = "tracing-exporter"
	tracingExporterFlagUsage = "Span exporter used by the tracer provider. Supported: JAEGER, STDOUT. " +
		"Tracing is disabled if not set. " + commonEnvVarUsageText + tracingExporterEnvKey
	tracingExporterEnvKey = "TRUST_REST_TRACING_EXPORTER"

	defaultLedgerType      = "indy"
	defaultDatabaseName    = "agenttrust"
	defaultDatabaseTimeout = 30 * time.Second
	metricsProviderProm    = "prometheus"
	defaultVDRProxyMaxRead = 3
	tracingServiceName     = "trust-rest"
	healthCheckCacheExpiry = 10 * time.Second
	healthCheckExecTimeout = 10 * time.Second
)

type startupParameters struct {
	hostURL             string
	vdrProxyURL         string
	vdrProxyMaxRetries  uint64
	ledgerType          string
	publicDID           string
	publicDIDVerKey     string
	dbParameters        *dbParameters
	metricsProviderName string
	promHTTPURL         string
	apiToken            string
	tracingExporter     tracing.SpanExporterType
	logLevel            string
}

type dbParameters struct {
	databaseURL     string
	databasePrefix  string
	databaseTimeout time.Duration
}

func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	vdrProxyURL, err := cmdutils.GetUserSetVarFromString(cmd, vdrProxyURLFlagName, vdrProxyURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	vdrProxyMaxRetries, err := getVDRProxyMaxRetries(cmd)
	if err != nil {
		return nil, err
	}

	ledgerType := cmdutils.GetUserSetOptionalVarFromString(cmd, ledgerTypeFlagName, ledgerTypeEnvKey)
	if ledgerType == "" {
		ledgerType = defaultLedgerType
	}

	publicDID := cmdutils.GetUserSetOptionalVarFromString(cmd, publicDIDFlagName, publicDIDEnvKey)

	publicDIDVerKey := cmdutils.GetUserSetOptionalVarFromString(cmd, publicDIDVerKeyFlagName,
		publicDIDVerKeyEnvKey)

	dbParams, err := getDBParameters(cmd)
	if err != nil {
		return nil, err
	}

	metricsProviderName, err := cmdutils.GetUserSetVarFromString(cmd, metricsProviderFlagName,
		metricsProviderEnvKey, true)
	if err != nil {
		return nil, err
	}

	var promHTTPURL string

	if metricsProviderName == metricsProviderProm {
		promHTTPURL, err = cmdutils.GetUserSetVarFromString(cmd, promHTTPURLFlagName, promHTTPURLEnvKey, false)
		if err != nil {
			return nil, err
		}
	}

	apiToken := cmdutils.GetUserSetOptionalVarFromString(cmd, apiTokenFlagName, apiTokenEnvKey)

	tracingExporter, err := getTracingExporter(cmd)
	if err != nil {
		return nil, err
	}

	logLevel := cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey)

	return &startupParameters{
		hostURL:             hostURL,
		vdrProxyURL:         vdrProxyURL,
		vdrProxyMaxRetries:  vdrProxyMaxRetries,
		ledgerType:          ledgerType,
		publicDID:           publicDID,
		publicDIDVerKey:     publicDIDVerKey,
		dbParameters:        dbParams,
		metricsProviderName: metricsProviderName,
		promHTTPURL:         promHTTPURL,
		apiToken:            apiToken,
		tracingExporter:     tracingExporter,
		logLevel:            logLevel,
	}, nil
}

func getVDRProxyMaxRetries(cmd *cobra.Command) (uint64, error) {
	maxRetriesStr := cmdutils.GetUserSetOptionalVarFromString(cmd, vdrProxyMaxRetriesFlagName,
		vdrProxyMaxRetriesEnvKey)

	if maxRetriesStr == "" {
		return defaultVDRProxyMaxRead, nil
	}

	maxRetries, err := strconv.ParseUint(maxRetriesStr, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid value [%s]: %w", maxRetriesStr, err)
	}

	return maxRetries, nil
}

func getTracingExporter(cmd *cobra.Command) (tracing.SpanExporterType, error) {
	exporter := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingExporterFlagName, tracingExporterEnvKey)

	if !tracing.IsExporterSupported(exporter) {
		return "", fmt.Errorf("unsupported tracing exporter: %s", exporter)
	}

	return exporter, nil
}

func getDBParameters(cmd *cobra.Command) (*dbParameters, error) {
	databaseURL, err := cmdutils.GetUserSetVarFromString(cmd, databaseURLFlagName, databaseURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	databasePrefix := cmdutils.GetUserSetOptionalVarFromString(cmd, databasePrefixFlagName,
		databasePrefixEnvKey)

	databaseTimeout, err := getDatabaseTimeout(cmd)
	if err != nil {
		return nil, err
	}

	return &dbParameters{
		databaseURL:     databaseURL,
		databasePrefix:  databasePrefix,
		databaseTimeout: databaseTimeout,
	}, nil
}

func getDatabaseTimeout(cmd *cobra.Command) (time.Duration, error) {
	timeoutStr := cmdutils.GetUserSetOptionalVarFromString(cmd, databaseTimeoutFlagName, databaseTimeoutEnvKey)

	if timeoutStr == "" {
		return defaultDatabaseTimeout, nil
	}

	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		return 0, fmt.Errorf("invalid value [%s]: %w", timeoutStr, err)
	}

	return time.Duration(timeout) * time.Second, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(vdrProxyURLFlagName, vdrProxyURLFlagShorthand, "", vdrProxyURLFlagUsage)
	startCmd.Flags().StringP(vdrProxyMaxRetriesFlagName, "", "", vdrProxyMaxRetriesFlagUsage)
	startCmd.Flags().StringP(ledgerTypeFlagName, "", "", ledgerTypeFlagUsage)
	startCmd.Flags().StringP(publicDIDFlagName, "", "", publicDIDFlagUsage)
	startCmd.Flags().StringP(publicDIDVerKeyFlagName, "", "", publicDIDVerKeyFlagUsage)
	startCmd.Flags().StringP(databaseURLFlagName, databaseURLFlagShorthand, "", databaseURLFlagUsage)
	startCmd.Flags().StringP(databasePrefixFlagName, "", "", databasePrefixFlagUsage)
	startCmd.Flags().StringP(databaseTimeoutFlagName, "", "", databaseTimeoutFlagUsage)
	startCmd.Flags().StringP(apiTokenFlagName, "", "", apiTokenFlagUsage)
	startCmd.Flags().StringP(metricsProviderFlagName, "", "", allowedMetricsProviderFlagUsage)
	startCmd.Flags().StringP(promHTTPURLFlagName, "", "", allowedPromHTTPURLFlagNameUsage)
	startCmd.Flags().StringP(tracingExporterFlagName, "", "", tracingExporterFlagUsage)
	startCmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "",
		common.LogLevelPrefixFlagUsage)
}
