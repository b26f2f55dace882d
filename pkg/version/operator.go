/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

package version

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOperator indicates an operator symbol outside the supported set.
var ErrUnknownOperator = errors.New("unknown operator")

// Operator represents one of the five supported comparison predicates over
// two Versions. The symbol set is closed: "=", "<", "<=", ">", ">=".
type Operator string

const (
	// OperatorEQ represents "=" (equal).
	OperatorEQ Operator = "="

	// OperatorLT represents "<" (less than).
	OperatorLT Operator = "<"

	// OperatorLE represents "<=" (less than or equal).
	OperatorLE Operator = "<="

	// OperatorGT represents ">" (greater than).
	OperatorGT Operator = ">"

	// OperatorGE represents ">=" (greater than or equal).
	OperatorGE Operator = ">="
)

// Operators returns the supported operators in symbol order.
func Operators() []Operator {
	return []Operator{OperatorEQ, OperatorLT, OperatorLE, OperatorGT, OperatorGE}
}

// ParseOperator parses an operator symbol. Matching is exact after trimming
// surrounding whitespace; any symbol outside the supported set (including
// "==" and "!=") is an error naming the supported symbols.
func ParseOperator(s string) (Operator, error) {
	switch op := Operator(strings.TrimSpace(s)); op {
	case OperatorEQ, OperatorLT, OperatorLE, OperatorGT, OperatorGE:
		return op, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: =, <, <=, >, >=)", ErrUnknownOperator, s)
	}
}

// String returns the operator symbol.
func (op Operator) String() string {
	return string(op)
}

// IsValid returns true if op is one of the five supported operators.
func (op Operator) IsValid() bool {
	switch op {
	case OperatorEQ, OperatorLT, OperatorLE, OperatorGT, OperatorGE:
		return true
	default:
		return false
	}
}

// Test evaluates "a op b" using the shared three-way Compare.
// An unsupported operator always evaluates to false; use IsValid or
// ParseOperator to surface that as an error.
func (op Operator) Test(a, b Version) bool {
	cmp := a.Compare(b)
	switch op {
	case OperatorEQ:
		return cmp == 0
	case OperatorLT:
		return cmp < 0
	case OperatorLE:
		return cmp <= 0
	case OperatorGT:
		return cmp > 0
	case OperatorGE:
		return cmp >= 0
	default:
		return false
	}
}
