// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) selected by the configured level.
//
// # Invocation Correlation
//
// Every action run gets a generated invocation id. The WithInvocationID
// helper attaches it to the logger so all entries produced by a single
// invocation can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithInvocationID(log)
//	log.Info("PUT operation complete")
package logger
