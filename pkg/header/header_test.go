/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

package header

import (
	"testing"
	"time"
)

func TestInit(t *testing.T) {
	var h Header
	h.Init(KindCheckResult, "vergate/v1", "v0.1.0")

	if h.Kind != KindCheckResult {
		t.Errorf("kind = %q, want %q", h.Kind, KindCheckResult)
	}
	if h.APIVersion != "vergate/v1" {
		t.Errorf("apiVersion = %q", h.APIVersion)
	}
	if h.Metadata == nil {
		t.Fatal("metadata should be populated")
	}
	if h.Metadata.ID == "" {
		t.Error("metadata ID should be set")
	}
	if h.Metadata.Version != "v0.1.0" {
		t.Errorf("metadata version = %q", h.Metadata.Version)
	}
	if time.Since(h.Metadata.Created) > time.Minute {
		t.Errorf("created timestamp not recent: %v", h.Metadata.Created)
	}

	// Each Init produces a distinct document identity.
	var h2 Header
	h2.Init(KindCheckResult, "vergate/v1", "v0.1.0")
	if h.Metadata.ID == h2.Metadata.ID {
		t.Error("expected unique IDs across Init calls")
	}
}
