// Package cli implements the command-line interface for the vergate tool.
//
// # Overview
//
// The vergate CLI compares semantic-style versions and evaluates
// compatibility gate rules against them. It is designed for release
// engineers and CI/CD pipelines gating deployments on component versions.
//
// # Commands
//
// compare - Compare two versions:
//
//	vergate compare 1.8 1.8.0 [--format yaml|json|table]
//
// Parses both versions and reports their ordering (-1/0/1 and the
// symbolic relation). Missing components default to zero, so "1.8" and
// "1.8.0" compare equal.
//
// eval - Test a version against a rule expression:
//
//	vergate eval 1.32.4 ">= 1.30" [--fail-on-miss]
//
// Evaluates a single operator expression against a version. With
// --fail-on-miss the command exits non-zero when the expression does not
// match.
//
// check - Evaluate a gate policy:
//
//	vergate check --policy policy.yaml [--output result.yaml] [--fail-on-error]
//
// Loads a policy document, resolves each component's version reference
// (literal, env://, file://, or image://), runs the component's rules,
// and reports per-component verdicts with a pass/fail/partial summary.
// With --metrics FILE the Prometheus metrics gathered during the run are
// written to FILE in the text exposition format.
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL  Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure, failed gate
//	   with --fail-on-error/--fail-on-miss)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/version - Version parsing and comparison
//   - pkg/compat - Gate rule evaluation
//   - pkg/check - Policy checking
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/vergate/pkg/cli.version=1.0.0'"
package cli
