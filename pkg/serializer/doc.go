/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer reads and writes vergate documents in JSON, YAML, and
// (write-only) flattened table form.
//
// Writing:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil { ... }
//
// Reading, with format detection from the file extension and HTTP(S)
// support for remote policies:
//
//	policy, err := serializer.FromFile[check.Policy]("policy.yaml")
package serializer
