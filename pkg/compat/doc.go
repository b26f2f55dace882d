/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package compat provides a fluent, immutable gate for conditional
// execution keyed to a version.
//
// A Gate holds one fixed base version and a chain of (operator, version,
// action) rules. Each chain link that matches replaces the selected action,
// so the last matching link wins; evaluation runs the selected action with
// the base version, or yields an empty result when nothing matched:
//
//	verdict, ok, err := compat.New[string](version.MustParse("2.0.0")).
//		On(version.OperatorLT, version.MustParse("3.0.0"), func(version.Version) string { return "supported" }).
//		OnExpr(">= 1.0.0", func(version.Version) string { return "legacy" }).
//		Call() // "legacy", true, nil
//
// Gates are value types: every chaining call returns a new snapshot, the
// receiver is never mutated, and no locking is needed to share them.
package compat
