// Package monitoring provides Prometheus metrics for the tiling daemon.
//
// Metrics:
//   - Reconciliations by result, attempt counts, durations
//   - Constraint-floor detections
//   - Window activations
//   - HTTP request counts and latencies
//   - WebSocket subscriber gauge and event counter
//
// The /metrics endpoint exposes the standard Prometheus text format; the gin
// middleware records per-request metrics automatically.
package monitoring
