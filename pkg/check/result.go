/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

package check

import (
	"time"

	"github.com/mchmarny/vergate/pkg/header"
)

// CheckStatus represents the overall check outcome.
type CheckStatus string

const (
	// CheckStatusPass indicates every component selected a verdict.
	CheckStatusPass CheckStatus = "pass"

	// CheckStatusFail indicates one or more components matched no rule.
	CheckStatusFail CheckStatus = "fail"

	// CheckStatusPartial indicates some components couldn't be evaluated.
	CheckStatusPartial CheckStatus = "partial"
)

// ComponentStatus represents the outcome of evaluating a single component.
type ComponentStatus string

const (
	// ComponentStatusPassed indicates a rule matched and selected a verdict.
	ComponentStatusPassed ComponentStatus = "passed"

	// ComponentStatusFailed indicates no rule matched the resolved version.
	ComponentStatusFailed ComponentStatus = "failed"

	// ComponentStatusSkipped indicates the component couldn't be evaluated
	// (unresolvable reference, unparseable version, or invalid rule).
	ComponentStatusSkipped ComponentStatus = "skipped"
)

// CheckResult represents the complete outcome of a policy check.
type CheckResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// PolicySource is the path/URI of the policy that was checked.
	PolicySource string `json:"policySource,omitempty" yaml:"policySource,omitempty"`

	// Summary contains aggregate check statistics.
	Summary CheckSummary `json:"summary" yaml:"summary"`

	// Results contains per-component details, in policy order.
	Results []ComponentCheck `json:"results" yaml:"results"`
}

// CheckSummary contains aggregate statistics about the check.
type CheckSummary struct {
	// Passed is the count of components that selected a verdict.
	Passed int `json:"passed" yaml:"passed"`

	// Failed is the count of components that matched no rule.
	Failed int `json:"failed" yaml:"failed"`

	// Skipped is the count of components that couldn't be evaluated.
	Skipped int `json:"skipped" yaml:"skipped"`

	// Total is the total number of components evaluated.
	Total int `json:"total" yaml:"total"`

	// Status is the overall check status.
	Status CheckStatus `json:"status" yaml:"status"`

	// Duration is how long the check took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// ComponentCheck represents the result of evaluating a single component.
type ComponentCheck struct {
	// Name is the component name from the policy.
	Name string `json:"name" yaml:"name"`

	// Reference is the version reference from the policy.
	Reference string `json:"reference" yaml:"reference"`

	// Version is the resolved, parsed version (canonical form).
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Verdict is the selected rule's verdict, when one matched.
	Verdict string `json:"verdict,omitempty" yaml:"verdict,omitempty"`

	// Status is the outcome of this component's evaluation.
	Status ComponentStatus `json:"status" yaml:"status"`

	// Message provides additional context for failures or skips.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// NewCheckResult creates a CheckResult with initialized slices.
func NewCheckResult() *CheckResult {
	return &CheckResult{
		Results: make([]ComponentCheck, 0),
	}
}
