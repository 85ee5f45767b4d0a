// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the registry.
//
// Key features:
//   - JSON and text output formats
//   - Operation ID propagation
//   - Context-aware logging
//   - Configurable log levels
//
// Example usage:
//
//	import "magazine-registry/internal/observability/logging"
//
//	func main() {
//	    logger := logging.New(os.Stderr, logging.ParseLevel(os.Getenv("LOG_LEVEL")), logging.FormatJSON)
//	    logger.Info("registry loaded", slog.Int("articles", 12))
//	}
//
//	func load(ctx context.Context) {
//	    ctx = logging.NewOperationID(ctx)
//	    logger := logging.WithOperationID(ctx, logging.FromContext(ctx))
//	    logger.Info("loading seed")
//	}
package logging
