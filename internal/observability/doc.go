// Package observability provides the registry's observability infrastructure:
// structured logging, Prometheus metrics and OpenTelemetry tracing.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry spans around registry mutations
//
// Example usage:
//
//	import (
//	    "magazine-registry/internal/observability/logging"
//	    "magazine-registry/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.New(os.Stderr, logging.ParseLevel(os.Getenv("LOG_LEVEL")), logging.FormatJSON)
//	    logger.Info("registry started")
//
//	    metrics.RecordMutation("create_author")
//	}
package observability
