/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package source resolves version references into version strings.
//
// A component's version can be given inline in a policy, or indirected
// through a reference scheme: an environment variable (env://NAME), a file
// (file://PATH), or the tag of an OCI image reference
// (image://ghcr.io/org/app:v1.2.3). The resolved string is treated as
// opaque input for version.Parse.
package source
