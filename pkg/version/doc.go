/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package version provides an immutable semantic version value type and the
// closed set of comparison operators over it.
//
// A Version carries Major, Minor, and Patch components plus an optional
// opaque pre-release tag. Parsing accepts "1", "1.2", "1.2.3", an optional
// "v" prefix, and a pre-release suffix after the first hyphen ("1.2.3-rc1");
// missing trailing components default to zero. Ordering is numeric on the
// core components; a release orders after its own pre-releases, and two
// pre-release tags compare as plain strings.
//
//	a := version.MustParse("1.8")
//	b := version.MustParse("1.7")
//	a.IsGreater(b)                     // true
//	version.OperatorGE.Test(a, b)      // true
//
// Version values are plain immutable structs and safe to share across
// goroutines without synchronization.
package version
