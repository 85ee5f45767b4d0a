// Package tracing provides OpenTelemetry tracing integration.
//
// Registry mutations run inside spans started with StartSpan. Spans are
// dropped unless a tracer provider is installed; the CLI installs one with
// InitStdout when --trace is given.
//
// Example usage:
//
//	import "magazine-registry/internal/observability/tracing"
//
//	func rename(ctx context.Context) (err error) {
//	    ctx, span := tracing.StartSpan(ctx, "registry.RenameMagazine")
//	    defer func() { tracing.EndSpan(span, err) }()
//	    // ... mutate ...
//	}
package tracing
