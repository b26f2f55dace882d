/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

package compat

import (
	"fmt"
	"strings"

	"github.com/mchmarny/vergate/pkg/version"
)

// ParseRule parses a rule expression of the form "<operator> <version>",
// e.g. ">= 1.32.4" or "<2.0". Whitespace between the operator symbol and
// the version is optional. The operator must be one of the five supported
// symbols and the remainder must parse as a version.
func ParseRule(expr string) (version.Operator, version.Version, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return "", version.Version{}, fmt.Errorf("rule expression cannot be empty")
	}

	// Match the operator symbol longest-first so ">=" is not read as ">".
	symbols := []version.Operator{
		version.OperatorGE,
		version.OperatorLE,
		version.OperatorGT,
		version.OperatorLT,
		version.OperatorEQ,
	}

	for _, sym := range symbols {
		rest, found := strings.CutPrefix(trimmed, string(sym))
		if !found {
			continue
		}
		v, err := version.Parse(rest)
		if err != nil {
			return "", version.Version{}, fmt.Errorf("invalid version in rule %q: %w", expr, err)
		}
		return sym, v, nil
	}

	return "", version.Version{}, fmt.Errorf("rule %q must start with an operator: %w",
		expr, version.ErrUnknownOperator)
}
