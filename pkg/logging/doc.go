/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package logging provides structured logging defaults shared by the
// vergate CLI and library packages.
//
// It wraps the standard library slog package with project conventions:
// JSON output to stderr, module/version context on every record, source
// location tracking at debug level, and level configuration through the
// LOG_LEVEL environment variable (debug, info, warn, error; default info).
//
// Typical use in main:
//
//	logging.SetDefaultStructuredLogger("vergate", version)
//	slog.Info("starting", "version", version)
//
// An explicit level (e.g. from a --log-level flag) takes precedence:
//
//	logging.SetDefaultStructuredLoggerWithLevel("vergate", version, "debug")
package logging
