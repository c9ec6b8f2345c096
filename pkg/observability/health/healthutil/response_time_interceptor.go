/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"context"
	"sync"
	"time"

	"github.com/alexliesenfeld/health"
)

// ResponseTimeState holds the last and running-average execution time of one
// health check.
type ResponseTimeState struct {
	LastResponseTime    time.Duration
	AverageResponseTime time.Duration
}

// ResponseTimeInterceptor measures each check execution and maintains a
// running average per check in the given map. The checker runs checks
// concurrently, so updates are serialized.
func ResponseTimeInterceptor(responseTimes map[string]ResponseTimeState) health.Interceptor {
	var mu sync.Mutex

	executions := make(map[string]int64)

	return func(next health.InterceptorFunc) health.InterceptorFunc {
		return func(ctx context.Context, name string, state health.CheckState) health.CheckState {
			started := time.Now()

			result := next(ctx, name, state)

			elapsed := time.Since(started)

			mu.Lock()
			defer mu.Unlock()

			executions[name]++

			previous := responseTimes[name]

			responseTimes[name] = ResponseTimeState{
				LastResponseTime:    elapsed,
				AverageResponseTime: previous.AverageResponseTime + (elapsed-previous.AverageResponseTime)/time.Duration(executions[name]),
			}

			return result
		}
	}
}
