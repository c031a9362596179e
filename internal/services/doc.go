// Package services defines shared utilities consumed by the resolution
// pipeline and its remote integrations.
//
// Key responsibilities:
//   - Context helpers that stamp stage names, catalog disc IDs, and correlation
//     identifiers for logging.
//   - Structured error markers plus the Wrap helper that let callers classify
//     failures (parse, transport, auth, not found) with errors.Is.
//
// Use these helpers when wiring new pipeline logic so error handling and
// observability stay uniform across components.
package services
