/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package check evaluates version gate policies against resolved
// component versions.
//
// A Policy names components, each with a version reference (a literal
// version or an env://, file://, or image:// source) and an ordered list
// of rules. Each rule pairs a comparison expression with a verdict; the
// last rule matching the resolved version selects the component's
// verdict. Components are evaluated concurrently and the outcome is
// aggregated into a CheckResult with pass/fail/partial summary status.
package check
