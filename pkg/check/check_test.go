/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

package check

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy(components ...Component) *Policy {
	return &Policy{Components: components}
}

func TestCheckAllPass(t *testing.T) {
	policy := testPolicy(
		Component{
			Name:    "kubernetes",
			Version: "1.32.4",
			Rules: []Rule{
				{When: ">= 1.30", Then: "supported"},
				{When: "< 1.25", Then: "unsupported"},
			},
		},
		Component{
			Name:    "containerd",
			Version: "v2.0.0",
			Rules: []Rule{
				{When: ">= 1.7", Then: "ok"},
			},
		},
	)

	c := New(WithVersion("test"))
	result, err := c.Check(t.Context(), policy)
	require.NoError(t, err)

	assert.Equal(t, CheckStatusPass, result.Summary.Status)
	assert.Equal(t, 2, result.Summary.Passed)
	assert.Equal(t, 2, result.Summary.Total)
	assert.Zero(t, result.Summary.Failed)
	assert.Zero(t, result.Summary.Skipped)

	require.Len(t, result.Results, 2)
	assert.Equal(t, "kubernetes", result.Results[0].Name)
	assert.Equal(t, "1.32.4", result.Results[0].Version)
	assert.Equal(t, "supported", result.Results[0].Verdict)
	assert.Equal(t, "containerd", result.Results[1].Name)
	assert.Equal(t, "2.0.0", result.Results[1].Version)
	assert.Equal(t, "ok", result.Results[1].Verdict)
}

func TestCheckLastMatchWins(t *testing.T) {
	policy := testPolicy(Component{
		Name:    "driver",
		Version: "550.90.7",
		Rules: []Rule{
			{When: ">= 500", Then: "first"},
			{When: ">= 550", Then: "second"},
			{When: ">= 600", Then: "never"},
		},
	})

	result, err := New().Check(t.Context(), policy)
	require.NoError(t, err)
	assert.Equal(t, "second", result.Results[0].Verdict)
}

func TestCheckNoRuleMatched(t *testing.T) {
	policy := testPolicy(Component{
		Name:    "kubernetes",
		Version: "1.20.0",
		Rules: []Rule{
			{When: ">= 1.30", Then: "supported"},
		},
	})

	result, err := New().Check(t.Context(), policy)
	require.NoError(t, err)

	assert.Equal(t, CheckStatusFail, result.Summary.Status)
	assert.Equal(t, 1, result.Summary.Failed)
	assert.Equal(t, ComponentStatusFailed, result.Results[0].Status)
	assert.Empty(t, result.Results[0].Verdict)
	assert.Contains(t, result.Results[0].Message, "no rule matched")
}

func TestCheckSkipsUnresolvable(t *testing.T) {
	policy := testPolicy(
		Component{
			Name:    "resolvable",
			Version: "1.0.0",
			Rules:   []Rule{{When: ">= 1", Then: "ok"}},
		},
		Component{
			Name:    "unresolvable",
			Version: "env://VERGATE_TEST_UNSET_VAR",
			Rules:   []Rule{{When: ">= 1", Then: "ok"}},
		},
	)

	result, err := New().Check(t.Context(), policy)
	require.NoError(t, err)

	assert.Equal(t, CheckStatusPartial, result.Summary.Status)
	assert.Equal(t, 1, result.Summary.Passed)
	assert.Equal(t, 1, result.Summary.Skipped)
	assert.Equal(t, ComponentStatusSkipped, result.Results[1].Status)
}

func TestCheckSkipsInvalidVersion(t *testing.T) {
	policy := testPolicy(Component{
		Name:    "bad",
		Version: "not-a-version",
		Rules:   []Rule{{When: ">= 1", Then: "ok"}},
	})

	result, err := New().Check(t.Context(), policy)
	require.NoError(t, err)

	assert.Equal(t, ComponentStatusSkipped, result.Results[0].Status)
	assert.Contains(t, result.Results[0].Message, "invalid version")
}

func TestCheckSkipsInvalidRule(t *testing.T) {
	policy := testPolicy(Component{
		Name:    "bad-rule",
		Version: "1.0.0",
		Rules:   []Rule{{When: "!= 1.0.0", Then: "ok"}},
	})

	result, err := New().Check(t.Context(), policy)
	require.NoError(t, err)

	assert.Equal(t, ComponentStatusSkipped, result.Results[0].Status)
	assert.Contains(t, result.Results[0].Message, "invalid rule")
}

func TestCheckWithResolver(t *testing.T) {
	resolver := func(_ context.Context, ref string) (string, error) {
		if ref == "lookup://kubernetes" {
			return "v1.28.3", nil
		}
		return "", fmt.Errorf("unknown reference: %s", ref)
	}

	policy := testPolicy(Component{
		Name:    "kubernetes",
		Version: "lookup://kubernetes",
		Rules:   []Rule{{When: ">= 1.28", Then: "supported"}},
	})

	result, err := New(WithResolver(resolver)).Check(t.Context(), policy)
	require.NoError(t, err)
	assert.Equal(t, "1.28.3", result.Results[0].Version)
	assert.Equal(t, "supported", result.Results[0].Verdict)
}

func TestCheckEnvReference(t *testing.T) {
	t.Setenv("VERGATE_TEST_K8S_VERSION", "v1.31.2")

	policy := testPolicy(Component{
		Name:    "kubernetes",
		Version: "env://VERGATE_TEST_K8S_VERSION",
		Rules:   []Rule{{When: ">= 1.30", Then: "supported"}},
	})

	result, err := New().Check(t.Context(), policy)
	require.NoError(t, err)
	assert.Equal(t, ComponentStatusPassed, result.Results[0].Status)
	assert.Equal(t, "1.31.2", result.Results[0].Version)
}

func TestCheckInvalidPolicy(t *testing.T) {
	_, err := New().Check(t.Context(), &Policy{})
	require.Error(t, err)
}

func TestCheckResultHeader(t *testing.T) {
	policy := testPolicy(Component{
		Name:    "x",
		Version: "1.0.0",
		Rules:   []Rule{{When: "= 1.0.0", Then: "ok"}},
	})

	result, err := New(WithVersion("v9.9.9")).Check(t.Context(), policy)
	require.NoError(t, err)

	require.NotNil(t, result.Metadata)
	assert.NotEmpty(t, result.Metadata.ID)
	assert.Equal(t, "v9.9.9", result.Metadata.Version)
	assert.Equal(t, APIVersion, result.APIVersion)
}
