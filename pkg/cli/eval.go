/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/vergate/pkg/compat"
	"github.com/mchmarny/vergate/pkg/serializer"
	ver "github.com/mchmarny/vergate/pkg/version"
)

// evaluation is the output document of the eval command.
type evaluation struct {
	// Version is the canonical form of the evaluated version.
	Version string `json:"version" yaml:"version"`

	// Expression is the rule expression as given.
	Expression string `json:"expression" yaml:"expression"`

	// Matched indicates whether the version satisfied the expression.
	Matched bool `json:"matched" yaml:"matched"`
}

func evalCmd() *cli.Command {
	return &cli.Command{
		Name:                  "eval",
		EnableShellCompletion: true,
		Usage:                 "Test a version against a rule expression",
		ArgsUsage:             `VERSION "EXPRESSION"`,
		Description: `Test whether a version satisfies a rule expression.

An expression is an operator followed by a version, e.g. ">= 1.8".

# Supported Operators

  "= 1.8.0"   - Equal
  "< 2.0"     - Less than
  "<= 1.33"   - Less than or equal
  "> 1.30"    - Greater than
  ">= 1.32.4" - Greater than or equal

# Examples

  vergate eval 1.8 "= 1.8.0"
  vergate eval v550.90.7 ">= 550" --format json

Use --fail-on-miss to exit non-zero when the expression does not match
(useful for CI/CD gating).`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "fail-on-miss",
				Usage: "Exit with non-zero status if the expression does not match",
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

			if cmd.Args().Len() != 2 {
				return fmt.Errorf("expected exactly 2 arguments (version and expression), got %d", cmd.Args().Len())
			}

			v, err := ver.Parse(cmd.Args().Get(0))
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", cmd.Args().Get(0), err)
			}

			expr := cmd.Args().Get(1)
			op, other, err := compat.ParseRule(expr)
			if err != nil {
				return fmt.Errorf("invalid expression %q: %w", expr, err)
			}

			result := evaluation{
				Version:    v.String(),
				Expression: expr,
				Matched:    op.Test(v, other),
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			if err := ser.Serialize(ctx, result); err != nil {
				return fmt.Errorf("failed to serialize evaluation result: %w", err)
			}

			if cmd.Bool("fail-on-miss") && !result.Matched {
				return fmt.Errorf("version %s does not satisfy %q", result.Version, expr)
			}

			return nil
		},
	}
}
