/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidArgument,
//	    "failed to resolve component version",
//	    cause,
//	    map[string]any{
//	        "component": name,
//	        "reference": ref,
//	    },
//	)
package errors
