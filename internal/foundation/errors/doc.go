// Package errors provides the classified error primitives used across docsite.
//
// Every failure raised while loading a site definition is a ClassifiedError
// carrying a category, a severity, a retry strategy and structured context
// (typically the offending field). Loading is fail-fast, so all load-time
// categories are fatal and never retried.
//
// Key features:
//   - ErrorCategory: config, plugin_resolution, versioning_conflict, ...
//   - ErrorSeverity: fatal, error, warning, info
//   - ClassifiedError: structured error found anywhere in a wrapped chain
//   - ErrorBuilder: fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and user-facing messages
//
// Example usage:
//
//	err := errors.ConfigError("baseUrl must start and end with '/'").
//		WithField("baseUrl").
//		WithContext("value", cfg.BaseURL).
//		Build()
package errors
