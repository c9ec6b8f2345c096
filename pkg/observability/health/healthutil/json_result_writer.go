/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alexliesenfeld/health"
)

type statusResponse struct {
	Status     health.AvailabilityStatus  `json:"status"`
	Components map[string]componentStatus `json:"components,omitempty"`
}

type componentStatus struct {
	health.CheckResult
	LastResponseTime    string `json:"last_response_time,omitempty"`
	AverageResponseTime string `json:"avg_response_time,omitempty"`
}

// JSONResultWriter renders checker results as JSON, annotating each component
// with the response times collected by ResponseTimeInterceptor.
type JSONResultWriter struct {
	responseTimes map[string]ResponseTimeState
}

// NewJSONResultWriter creates JSONResultWriter. The map is shared with the
// interceptor populating it.
func NewJSONResultWriter(responseTimes map[string]ResponseTimeState) *JSONResultWriter {
	return &JSONResultWriter{
		responseTimes: responseTimes,
	}
}

// Write implements health.ResultWriter.
func (rw *JSONResultWriter) Write(result *health.CheckerResult, status int,
	w http.ResponseWriter, _ *http.Request) error {
	resp := &statusResponse{Status: result.Status}

	if result.Details != nil {
		resp.Components = make(map[string]componentStatus, len(*result.Details))

		for name, check := range *result.Details {
			resp.Components[name] = rw.annotate(name, check)
		}
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshal health check response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(b)

	return err
}

func (rw *JSONResultWriter) annotate(name string, check health.CheckResult) componentStatus {
	component := componentStatus{CheckResult: check}

	if times, ok := rw.responseTimes[name]; ok {
		component.LastResponseTime = times.LastResponseTime.String()
		component.AverageResponseTime = times.AverageResponseTime.String()
	}

	return component
}
