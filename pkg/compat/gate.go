/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

package compat

import (
	"github.com/mchmarny/vergate/pkg/version"
)

// Action is a deferred computation keyed to the gate's base version.
// It is only invoked at evaluation time, never while the chain is built.
type Action[R any] func(base version.Version) R

// Gate evaluates a chain of (operator, version, action) rules against one
// fixed base version. Each chaining call returns a new Gate value rather
// than mutating the receiver, so gates are immutable snapshots and safe to
// share; the last matching rule's action is the one evaluated.
type Gate[R any] struct {
	base    version.Version
	action  Action[R]
	matched bool
	err     error
}

// New creates a Gate for the given base version with no action selected.
func New[R any](base version.Version) Gate[R] {
	return Gate[R]{base: base}
}

// Base returns the gate's fixed base version.
func (g Gate[R]) Base() version.Version {
	return g.base
}

// Err returns the first error recorded while building the chain
// (e.g., an unparseable expression passed to OnExpr), or nil.
func (g Gate[R]) Err() error {
	return g.err
}

// On evaluates "base op other" and, when true, returns a gate with action
// installed as the current selection; when false the receiver is returned
// unchanged, preserving any previously matched action. Chain order matters:
// the LAST matching rule wins. The action itself is not invoked here.
func (g Gate[R]) On(op version.Operator, other version.Version, action Action[R]) Gate[R] {
	if g.err != nil {
		return g
	}
	if !op.Test(g.base, other) {
		return g
	}
	return Gate[R]{
		base:    g.base,
		action:  action,
		matched: true,
	}
}

// OnExpr is On with the rule given as a single expression, e.g. ">= 1.2" or
// "< 3.0.0-rc1". A malformed expression poisons the gate: the error is
// recorded, later links are skipped, and evaluation surfaces it.
func (g Gate[R]) OnExpr(expr string, action Action[R]) Gate[R] {
	if g.err != nil {
		return g
	}
	op, other, err := ParseRule(expr)
	if err != nil {
		g.err = err
		return g
	}
	return g.On(op, other, action)
}

// Call invokes the currently selected action with the base version and
// returns its result. The second return reports whether any rule matched;
// when false (or when the chain recorded an error) the result is the zero
// value. Call can run any number of times; the action is re-invoked on
// each call, so side effects repeat.
func (g Gate[R]) Call() (R, bool, error) {
	var zero R
	if g.err != nil {
		return zero, false, g.err
	}
	if !g.matched {
		return zero, false, nil
	}
	return g.action(g.base), true, nil
}

// Get returns the selected action's result, or the zero value of R when no
// rule matched or the chain recorded an error.
func (g Gate[R]) Get() R {
	r, _, _ := g.Call()
	return r
}

// Accept invokes fn with the selected action's result only when a rule
// matched. Returns the chain error, if any.
func (g Gate[R]) Accept(fn func(R)) error {
	r, ok, err := g.Call()
	if err != nil {
		return err
	}
	if ok {
		fn(r)
	}
	return nil
}
