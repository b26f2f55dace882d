/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{path: "policy.yaml", expected: FormatYAML},
		{path: "policy.YML", expected: FormatYAML},
		{path: "result.json", expected: FormatJSON},
		{path: "no-extension", expected: FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatFromPath(tt.path))
		})
	}
}

func TestReaderRejectsTableFormat(t *testing.T) {
	_, err := NewReader(FormatTable, strings.NewReader(""))
	require.Error(t, err)

	_, err = NewReader(Format("bogus"), strings.NewReader(""))
	require.Error(t, err)
}

func TestReaderDeserializeJSON(t *testing.T) {
	r, err := NewReader(FormatJSON, strings.NewReader(`{"name":"k8s","version":"1.28.3"}`))
	require.NoError(t, err)

	var got testDoc
	require.NoError(t, r.Deserialize(&got))
	assert.Equal(t, "k8s", got.Name)
	assert.Equal(t, "1.28.3", got.Version)
}

func TestFromFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: k8s\nversion: 1.28.3\n"), 0o600))

	got, err := FromFile[testDoc](path)
	require.NoError(t, err)
	assert.Equal(t, "k8s", got.Name)
	assert.Equal(t, "1.28.3", got.Version)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile[testDoc](filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestFromFileHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"remote","version":"2.0.0"}`))
	}))
	defer srv.Close()

	got, err := FromFile[testDoc](srv.URL + "/doc.json")
	require.NoError(t, err)
	assert.Equal(t, "remote", got.Name)
}

func TestFromFileHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := FromFile[testDoc](srv.URL + "/doc.json")
	require.Error(t, err)
}
