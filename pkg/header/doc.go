/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package header defines the common metadata header shared by vergate
// document types (policies and check results), including API versioning,
// document kind, and creation metadata.
package header
