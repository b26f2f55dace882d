/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version construction and parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrNegativeComponent = errors.New("version component cannot be negative")
	ErrEmptyPreRelease   = errors.New("pre-release segment is empty")
)

// Version represents an immutable semantic version with Major, Minor, and
// Patch components plus an optional pre-release tag. The pre-release tag is
// the opaque text after the first hyphen (e.g., "rc1" in "1.2.3-rc1").
// A version without a pre-release tag sorts after the same core version
// with one.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`

	// PreRelease holds the opaque pre-release tag, empty when absent.
	PreRelease string `json:"preRelease,omitempty" yaml:"preRelease,omitempty"`
}

// New creates a Version from explicit components.
// Returns an error if any component is negative. An all-zero version is
// valid ("0.0.0" is a legitimate version).
func New(major, minor, patch int) (Version, error) {
	if major < 0 || minor < 0 || patch < 0 {
		return Version{}, fmt.Errorf("%w: %d.%d.%d", ErrNegativeComponent, major, minor, patch)
	}
	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// Parse parses a version string into a Version.
// Supported formats: "1", "1.2", "1.2.3", "v1.2.3", "1.2.3-rc1".
// The "v" prefix is optional and stripped if present. Surrounding whitespace
// is ignored. Everything after the first hyphen is kept as the opaque
// pre-release tag. Missing trailing components default to zero.
// Returns an error if the string is empty, a core component is not a
// non-negative base-10 integer, or there are more than 3 core components.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	// Strip 'v' prefix if present
	s = strings.TrimPrefix(s, "v")

	var v Version

	// Split core from the opaque pre-release tag on the first hyphen
	core, pre, found := strings.Cut(s, "-")
	if found {
		if pre == "" {
			return Version{}, fmt.Errorf("%w: %q", ErrEmptyPreRelease, s)
		}
		v.PreRelease = pre
	}

	parts := strings.Split(core, ".")
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrTooManyComponents, core)
	}

	for i, part := range parts {
		if part == "" {
			return Version{}, fmt.Errorf("%w: empty component in %q", ErrNonNumeric, core)
		}
		num, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		if num < 0 {
			return Version{}, fmt.Errorf("%w: %d", ErrNegativeComponent, num)
		}

		switch i {
		case 0:
			v.Major = num
		case 1:
			v.Minor = num
		case 2:
			v.Patch = num
		}
	}

	return v, nil
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For user input or
// runtime data, always use Parse and handle errors explicitly.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// String returns the canonical string representation: "Major.Minor.Patch"
// with "-PreRelease" appended when a pre-release tag is present.
// The result round-trips through Parse back to an equal Version.
func (v Version) String() string {
	if v.PreRelease != "" {
		return fmt.Sprintf("%d.%d.%d-%s", v.Major, v.Minor, v.Patch, v.PreRelease)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns an integer comparing two versions:
// -1 if v < other, 0 if v == other, 1 if v > other.
// Major, Minor, and Patch compare numerically. When the core components are
// equal, a version without a pre-release tag is greater than the same core
// version with one (a release supersedes its own pre-releases); two present
// tags compare as ordinary strings.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}

	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}

	if v.Patch != other.Patch {
		if v.Patch < other.Patch {
			return -1
		}
		return 1
	}

	switch {
	case v.PreRelease == other.PreRelease:
		return 0
	case v.PreRelease == "":
		return 1
	case other.PreRelease == "":
		return -1
	default:
		return strings.Compare(v.PreRelease, other.PreRelease)
	}
}

// Equals returns true if all components, including the pre-release tag, match.
func (v Version) Equals(other Version) bool {
	return v == other
}

// IsLess returns true if v orders strictly before other.
func (v Version) IsLess(other Version) bool {
	return v.Compare(other) < 0
}

// IsGreater returns true if v orders strictly after other.
func (v Version) IsGreater(other Version) bool {
	return v.Compare(other) > 0
}

// LessOrEqual returns true if v orders before or equal to other.
func (v Version) LessOrEqual(other Version) bool {
	return v.Compare(other) <= 0
}

// GreaterOrEqual returns true if v orders after or equal to other.
func (v Version) GreaterOrEqual(other Version) bool {
	return v.Compare(other) >= 0
}

// IsValid returns true if all components are non-negative.
func (v Version) IsValid() bool {
	return v.Major >= 0 && v.Minor >= 0 && v.Patch >= 0
}
