/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

package source

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/mchmarny/vergate/pkg/errors"
)

// Reference schemes understood by Resolve. A reference without a scheme is
// treated as a literal version string.
const (
	// EnvURIScheme reads the version from an environment variable
	// (e.g., "env://K8S_VERSION").
	EnvURIScheme = "env://"

	// FileURIScheme reads the version from the first line of a file
	// (e.g., "file:///etc/app/version").
	FileURIScheme = "file://"

	// ImageURIScheme takes the version from the tag of an OCI image
	// reference (e.g., "image://ghcr.io/org/app:v1.2.3").
	ImageURIScheme = "image://"
)

// Resolve produces a version string for the given reference.
// Supported forms:
//   - literal value: returned as-is after trimming ("1.28.3")
//   - env://NAME: value of the environment variable NAME
//   - file://PATH: first line of the file at PATH
//   - image://REF: tag of the OCI image reference REF
//
// The resolved string is opaque here; callers parse it with version.Parse.
func Resolve(ctx context.Context, ref string) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return "", apperrors.New(apperrors.ErrCodeInvalidArgument, "version reference cannot be empty")
	}

	switch {
	case strings.HasPrefix(trimmed, EnvURIScheme):
		return fromEnv(strings.TrimPrefix(trimmed, EnvURIScheme))
	case strings.HasPrefix(trimmed, FileURIScheme):
		return fromFile(strings.TrimPrefix(trimmed, FileURIScheme))
	case strings.HasPrefix(trimmed, ImageURIScheme):
		return fromImage(strings.TrimPrefix(trimmed, ImageURIScheme))
	default:
		return trimmed, nil
	}
}

// fromEnv reads the version from an environment variable.
func fromEnv(name string) (string, error) {
	if name == "" {
		return "", apperrors.New(apperrors.ErrCodeInvalidArgument, "environment reference has no variable name")
	}

	val, ok := os.LookupEnv(name)
	if !ok || strings.TrimSpace(val) == "" {
		return "", apperrors.NewWithContext(apperrors.ErrCodeNotFound,
			"environment variable not set", map[string]any{"name": name})
	}

	return strings.TrimSpace(val), nil
}

// fromFile reads the version from the first non-blank line of a file.
func fromFile(path string) (string, error) {
	if path == "" {
		return "", apperrors.New(apperrors.ErrCodeInvalidArgument, "file reference has no path")
	}

	file, err := os.Open(path)
	if err != nil {
		return "", apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
			"failed to open version file", err, map[string]any{"path": path})
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Warn("failed to close version file", "path", path, "error", err)
		}
	}()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to read version file", err, map[string]any{"path": path})
	}

	return "", apperrors.NewWithContext(apperrors.ErrCodeNotFound,
		"version file is empty", map[string]any{"path": path})
}

// fromImage extracts the tag from an OCI image reference.
func fromImage(img string) (string, error) {
	if img == "" {
		return "", apperrors.New(apperrors.ErrCodeInvalidArgument, "image reference is empty")
	}

	ref, err := reference.ParseNormalizedNamed(img)
	if err != nil {
		return "", apperrors.WrapWithContext(apperrors.ErrCodeInvalidArgument,
			"invalid image reference", err, map[string]any{"image": img})
	}

	tagged, ok := ref.(reference.Tagged)
	if !ok {
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidArgument,
			"image reference has no tag", map[string]any{"image": img})
	}

	slog.Debug("resolved version from image reference",
		"image", img,
		"domain", reference.Domain(ref),
		"path", reference.Path(ref),
		"tag", tagged.Tag())

	return tagged.Tag(), nil
}
