/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

package header

import (
	"time"

	"github.com/google/uuid"
)

// Kinds of vergate documents.
const (
	// KindPolicy identifies a compatibility policy document.
	KindPolicy = "Policy"

	// KindCheckResult identifies the result of a policy check.
	KindCheckResult = "CheckResult"
)

// Header provides consistent metadata for vergate documents (policies and
// check results). It is embedded inline into the document types.
type Header struct {
	// APIVersion is the document schema version (e.g., "vergate/v1").
	APIVersion string `json:"apiVersion" yaml:"apiVersion"`

	// Kind identifies the document type (e.g., "Policy", "CheckResult").
	Kind string `json:"kind" yaml:"kind"`

	// Metadata holds optional creation metadata.
	Metadata *Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Metadata holds document creation metadata.
type Metadata struct {
	// ID is a unique identifier for this document instance.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Created is the UTC creation timestamp.
	Created time.Time `json:"created" yaml:"created"`

	// Version is the tool version that produced the document.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// Init populates the header with the given kind, API version, and tool
// version, stamping a fresh ID and creation time.
func (h *Header) Init(kind, apiVersion, toolVersion string) {
	h.APIVersion = apiVersion
	h.Kind = kind
	h.Metadata = &Metadata{
		ID:      uuid.New().String(),
		Created: time.Now().UTC(),
		Version: toolVersion,
	}
}
