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

	"github.com/mchmarny/vergate/pkg/serializer"
	ver "github.com/mchmarny/vergate/pkg/version"
)

// comparison is the output document of the compare command.
type comparison struct {
	// Left is the canonical form of the first version.
	Left string `json:"left" yaml:"left"`

	// Right is the canonical form of the second version.
	Right string `json:"right" yaml:"right"`

	// Result is -1, 0, or 1 when left sorts before, equal to, or after right.
	Result int `json:"result" yaml:"result"`

	// Relation is the symbolic form of the result: <, =, or >.
	Relation string `json:"relation" yaml:"relation"`
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare two versions",
		ArgsUsage:             "LEFT RIGHT",
		Description: `Compare two versions and report their ordering.

Versions may have 1 to 3 dot-separated numeric components; missing
components default to zero, so "1.8" and "1.8.0" compare equal. An
optional leading "v" is stripped. A hyphen introduces a pre-release
label; a version without a pre-release sorts after the same version
with one (1.0.0 > 1.0.0-rc1).

# Examples

  vergate compare 1.8 1.8.0
  vergate compare v1.2.3 2.0 --format json`,
		Flags: []cli.Flag{
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
				return fmt.Errorf("expected exactly 2 arguments (left and right version), got %d", cmd.Args().Len())
			}

			left, err := ver.Parse(cmd.Args().Get(0))
			if err != nil {
				return fmt.Errorf("invalid left version %q: %w", cmd.Args().Get(0), err)
			}
			right, err := ver.Parse(cmd.Args().Get(1))
			if err != nil {
				return fmt.Errorf("invalid right version %q: %w", cmd.Args().Get(1), err)
			}

			result := comparison{
				Left:   left.String(),
				Right:  right.String(),
				Result: left.Compare(right),
			}
			switch result.Result {
			case -1:
				result.Relation = "<"
			case 0:
				result.Relation = "="
			default:
				result.Relation = ">"
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, result)
		},
	}
}
