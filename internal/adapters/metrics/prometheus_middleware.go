package metrics

import (
	"context"
	"time"

	"github.com/andrescamacho/factory-planner/internal/application/common"
)

// PrometheusMiddleware wraps the mediator so every request is timed and
// counted under its type name, e.g. "SolveProjectCommand".
func PrometheusMiddleware(collector *RequestMetricsCollector) common.Middleware {
	return func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		name := common.RequestName(request)
		collector.started(name)
		start := time.Now()

		response, err := next(ctx, request)
		collector.finished(name, time.Since(start).Seconds(), err)
		return response, err
	}
}
