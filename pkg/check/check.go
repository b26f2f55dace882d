/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

package check

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/vergate/pkg/compat"
	"github.com/mchmarny/vergate/pkg/header"
	"github.com/mchmarny/vergate/pkg/source"
	"github.com/mchmarny/vergate/pkg/version"
)

// Resolver resolves a component's version reference to a raw version string.
type Resolver func(ctx context.Context, ref string) (string, error)

// Checker evaluates policy rules against resolved component versions.
type Checker struct {
	// Version is the checker version (typically the CLI version).
	Version string

	// resolver resolves version references. Defaults to source.Resolve.
	resolver Resolver
}

// Option is a functional option for configuring Checker instances.
type Option func(*Checker)

// WithVersion returns an Option that sets the Checker version string.
func WithVersion(version string) Option {
	return func(c *Checker) {
		c.Version = version
	}
}

// WithResolver returns an Option that overrides the version reference
// resolver. Intended for tests.
func WithResolver(r Resolver) Option {
	return func(c *Checker) {
		c.resolver = r
	}
}

// New creates a new Checker with the provided options.
func New(opts ...Option) *Checker {
	c := &Checker{
		resolver: source.Resolve,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check evaluates all components of the policy and returns a CheckResult
// with per-component outcomes and a summary. Components are evaluated
// concurrently; results preserve policy order.
func (c *Checker) Check(ctx context.Context, policy *Policy) (*CheckResult, error) {
	start := time.Now()

	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid policy: %w", err)
	}

	result := NewCheckResult()
	result.Init(header.KindCheckResult, APIVersion, c.Version)
	result.Results = make([]ComponentCheck, len(policy.Components))

	checkComponentCount.Set(float64(len(policy.Components)))

	g, gctx := errgroup.WithContext(ctx)
	for i, comp := range policy.Components {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			result.Results[i] = c.evaluateComponent(gctx, comp)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		checkTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("check interrupted: %w", err)
	}

	// Update summary counts
	for _, cc := range result.Results {
		switch cc.Status {
		case ComponentStatusPassed:
			result.Summary.Passed++
		case ComponentStatusFailed:
			result.Summary.Failed++
		case ComponentStatusSkipped:
			result.Summary.Skipped++
		}
		checkComponentTotal.WithLabelValues(string(cc.Status)).Inc()
	}

	result.Summary.Total = len(policy.Components)
	result.Summary.Duration = time.Since(start)

	// Determine overall status
	switch {
	case result.Summary.Failed > 0:
		result.Summary.Status = CheckStatusFail
	case result.Summary.Skipped > 0:
		result.Summary.Status = CheckStatusPartial
	default:
		result.Summary.Status = CheckStatusPass
	}

	checkDuration.Observe(result.Summary.Duration.Seconds())
	checkTotal.WithLabelValues(string(result.Summary.Status)).Inc()

	slog.Debug("check completed",
		"passed", result.Summary.Passed,
		"failed", result.Summary.Failed,
		"skipped", result.Summary.Skipped,
		"status", result.Summary.Status,
		"duration", result.Summary.Duration)

	return result, nil
}

// evaluateComponent resolves a single component's version and runs it
// through the component's rule gate.
func (c *Checker) evaluateComponent(ctx context.Context, comp Component) ComponentCheck {
	cc := ComponentCheck{
		Name:      comp.Name,
		Reference: comp.Version,
	}

	// Resolve the version reference
	raw, err := c.resolver(ctx, comp.Version)
	if err != nil {
		cc.Status = ComponentStatusSkipped
		cc.Message = fmt.Sprintf("version reference not resolvable: %v", err)
		slog.Warn("skipping component - reference not resolvable",
			"name", comp.Name,
			"reference", comp.Version,
			"error", err)
		return cc
	}

	// Parse the resolved version
	v, err := version.Parse(raw)
	if err != nil {
		cc.Status = ComponentStatusSkipped
		cc.Message = fmt.Sprintf("invalid version %q: %v", raw, err)
		slog.Warn("skipping component with invalid version",
			"name", comp.Name,
			"version", raw,
			"error", err)
		return cc
	}
	cc.Version = v.String()

	// Build and evaluate the gate; last matching rule wins
	gate := compat.New[string](v)
	for _, rule := range comp.Rules {
		verdict := rule.Then
		gate = gate.OnExpr(rule.When, func(version.Version) string {
			return verdict
		})
	}

	verdict, matched, err := gate.Call()
	if err != nil {
		cc.Status = ComponentStatusSkipped
		cc.Message = fmt.Sprintf("invalid rule: %v", err)
		slog.Warn("skipping component with invalid rule",
			"name", comp.Name,
			"error", err)
		return cc
	}

	if matched {
		cc.Status = ComponentStatusPassed
		cc.Verdict = verdict
		slog.Debug("component passed",
			"name", comp.Name,
			"version", cc.Version,
			"verdict", verdict)
	} else {
		cc.Status = ComponentStatusFailed
		cc.Message = fmt.Sprintf("no rule matched version %s", cc.Version)
		slog.Debug("component failed",
			"name", comp.Name,
			"version", cc.Version)
	}

	return cc
}
