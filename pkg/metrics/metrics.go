// Package metrics documents the Prometheus metrics exposed by the Fingrid
// client. Metrics are defined next to the code they observe (pkg/client) via
// promauto and land in the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the Prometheus registerer used by the client packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Reference
//
// Request metrics (pkg/client):
//   - fingrid_requests_total{endpoint, status} (Counter): requests by endpoint
//     ("/data", "/datasets") and HTTP status ("200", "429", "network_error", ...)
//   - fingrid_request_duration_seconds{endpoint} (Histogram): request duration
//   - fingrid_errors_total{class} (Counter): classified errors
//     (credential, network, rate_limit, response)
//
// Example queries:
//
//   # Error rate by class
//   rate(fingrid_errors_total[5m])
//
//   # P95 request latency
//   histogram_quantile(0.95, rate(fingrid_request_duration_seconds_bucket[5m]))
