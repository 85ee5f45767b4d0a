// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the registry metrics:
//   - Registry size gauges (authors, magazines, articles)
//   - Validation failures by entity kind and field
//   - Successful mutations by operation
//
// All metrics are registered with the Prometheus default registry. The
// registry CLI renders them with the "metrics" command.
//
// Example usage:
//
//	import "magazine-registry/internal/observability/metrics"
//
//	func rename(m *entity.Magazine, name string) error {
//	    if err := m.SetName(name); err != nil {
//	        metrics.RecordValidationFailure("magazine", "name")
//	        return err
//	    }
//	    metrics.RecordMutation("rename_magazine")
//	    return nil
//	}
package metrics
