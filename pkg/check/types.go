/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

package check

import (
	"fmt"

	"github.com/mchmarny/vergate/pkg/header"
)

const (
	// APIVersion is the document schema version for policies and results.
	APIVersion = "vergate/v1"
)

// Policy declares the components to check and the gate rules for each.
type Policy struct {
	header.Header `json:",inline" yaml:",inline"`

	// Components lists the components to evaluate.
	Components []Component `json:"components" yaml:"components"`
}

// Component pairs a named component's version reference with its gate rules.
type Component struct {
	// Name identifies the component (e.g., "kubernetes").
	Name string `json:"name" yaml:"name"`

	// Version is the component's version reference: a literal version
	// string or a source scheme (env://, file://, image://).
	Version string `json:"version" yaml:"version"`

	// Rules are evaluated in order against the resolved version;
	// the last matching rule's verdict is selected.
	Rules []Rule `json:"rules" yaml:"rules"`
}

// Rule is one gate link: a comparison expression and the verdict selected
// when it matches.
type Rule struct {
	// When is the rule expression, e.g. ">= 1.32.4".
	When string `json:"when" yaml:"when"`

	// Then is the verdict selected when the rule matches,
	// e.g. "supported".
	Then string `json:"then" yaml:"then"`
}

// Validate performs structural validation of the policy.
// Rule expressions are validated later, during evaluation, so one bad rule
// skips a single component rather than rejecting the whole policy.
func (p *Policy) Validate() error {
	if p == nil {
		return fmt.Errorf("policy cannot be nil")
	}
	if len(p.Components) == 0 {
		return fmt.Errorf("policy has no components")
	}

	seen := make(map[string]bool, len(p.Components))
	for i, c := range p.Components {
		if c.Name == "" {
			return fmt.Errorf("component %d has no name", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate component name: %q", c.Name)
		}
		seen[c.Name] = true

		if c.Version == "" {
			return fmt.Errorf("component %q has no version reference", c.Name)
		}
		if len(c.Rules) == 0 {
			return fmt.Errorf("component %q has no rules", c.Name)
		}
		for j, r := range c.Rules {
			if r.When == "" {
				return fmt.Errorf("component %q rule %d has no expression", c.Name, j)
			}
			if r.Then == "" {
				return fmt.Errorf("component %q rule %d has no verdict", c.Name, j)
			}
		}
	}

	return nil
}
