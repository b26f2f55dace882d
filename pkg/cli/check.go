/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/vergate/pkg/check"
	"github.com/mchmarny/vergate/pkg/serializer"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Evaluate a gate policy against resolved component versions",
		Description: `Evaluate every component of a policy against its gate rules.

A policy names components, each with a version reference and an ordered
list of rules. Rules are evaluated against the resolved version; the
last matching rule selects the component's verdict.

# Version References

Component versions can be literals or resolvable references:
  "1.28.3"                        - Literal version
  "env://K8S_VERSION"             - Environment variable
  "file:///etc/app/version"       - First line of a file
  "image://ghcr.io/org/app:v1.2"  - Tag of an OCI image reference

# Examples

Check a policy from a file:
  vergate check --policy policy.yaml

Check a remote policy and write the result to a file:
  vergate check -p https://example.com/policy.yaml -o result.yaml

Fail the command if any component fails or is skipped (useful for CI/CD):
  vergate check -p policy.yaml --fail-on-error

Dump Prometheus metrics for the run to a file:
  vergate check -p policy.yaml --metrics metrics.prom`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "policy",
				Aliases:  []string{"p"},
				Required: true,
				Usage: `Path/URI to policy file containing components and gate rules.
	Supports: file paths or HTTP/HTTPS URLs.`,
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status unless every component passes",
			},
			&cli.StringFlag{
				Name:  "metrics",
				Usage: "Write Prometheus metrics (text exposition format) to this file after the check",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// Parse output format
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			policyPath := cmd.String("policy")
			failOnError := cmd.Bool("fail-on-error")

			slog.Info("loading policy", "uri", policyPath)

			policy, err := serializer.FromFile[check.Policy](policyPath)
			if err != nil {
				return fmt.Errorf("failed to load policy from %q: %w", policyPath, err)
			}

			slog.Info("checking components",
				"policy", policyPath,
				"components", len(policy.Components))

			c := check.New(
				check.WithVersion(version),
			)

			result, err := c.Check(ctx, policy)
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}

			// Set source information
			result.PolicySource = policyPath

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			if err := ser.Serialize(ctx, result); err != nil {
				return fmt.Errorf("failed to serialize check result: %w", err)
			}

			slog.Info("check completed",
				"status", result.Summary.Status,
				"passed", result.Summary.Passed,
				"failed", result.Summary.Failed,
				"skipped", result.Summary.Skipped,
				"duration", result.Summary.Duration)

			if metricsPath := cmd.String("metrics"); metricsPath != "" {
				if err := writeMetricsFile(metricsPath); err != nil {
					return fmt.Errorf("failed to write metrics to %q: %w", metricsPath, err)
				}
				slog.Debug("metrics written", "path", metricsPath)
			}

			if failOnError && result.Summary.Status != check.CheckStatusPass {
				return fmt.Errorf("check failed: %d component(s) did not pass", result.Summary.Failed+result.Summary.Skipped)
			}

			return nil
		},
	}
}

// writeMetricsFile dumps gathered Prometheus metrics to the given path.
func writeMetricsFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Warn("failed to close metrics file", "path", path, "error", err)
		}
	}()

	return check.WriteMetrics(file)
}
