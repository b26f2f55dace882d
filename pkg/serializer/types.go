/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import "context"

// Serializer is an interface for writing structured data.
// Implementations serialize to various formats such as JSON, YAML, or a
// flattened table. The context parameter is provided for consistency with
// implementations that perform I/O.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer is an optional interface that Serializers implement when they
// need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
