/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

package version

import (
	"testing"
)

// FuzzParse performs fuzz testing on Parse to find edge cases
func FuzzParse(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add("1")
	f.Add("v1")
	f.Add("1.2")
	f.Add("v1.2")
	f.Add("1.2.3")
	f.Add("v1.2.3")
	f.Add("0")
	f.Add("0.0")
	f.Add("0.0.0")
	f.Add("999.999.999")
	f.Add("1.2.3-beta")
	f.Add("1.0.0-rc1")
	f.Add("6.8.0-1028-aws")
	f.Add("1.28.0-gke.1337000")
	f.Add("")
	f.Add(".")
	f.Add("..")
	f.Add("1.")
	f.Add(".1")
	f.Add("1..2")
	f.Add("v")
	f.Add("vv1")
	f.Add("-1")
	f.Add("1.-2")
	f.Add("a.b.c")
	f.Add("1.2.3.4")
	f.Add("1.2.3-")
	f.Add("   1.2.3")
	f.Add("1. 2.3")

	f.Fuzz(func(t *testing.T, input string) {
		// Parse should never panic
		v, err := Parse(input)

		// If parsing succeeded, verify the version is valid
		if err == nil {
			if !v.IsValid() {
				t.Errorf("Parse(%q) returned invalid version: %+v", input, v)
			}

			// String() must round-trip back to an equal version
			s := v.String()
			v2, err2 := Parse(s)
			if err2 != nil {
				t.Errorf("re-parsing %q (from %q) failed: %v", s, input, err2)
			} else if !v.Equals(v2) {
				t.Errorf("round-trip mismatch for %q: %+v != %+v", input, v, v2)
			}

			// Comparison methods must not panic and must stay consistent
			other := Version{Major: 1, Minor: 2, Patch: 3}
			cmp := v.Compare(other)
			if cmp < -1 || cmp > 1 {
				t.Errorf("Compare out of range for %q: %d", input, cmp)
			}
			for _, op := range Operators() {
				_ = op.Test(v, other)
			}
		}
	})
}
