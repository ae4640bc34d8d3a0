// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package file

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/unicode"

	apperrors "github.com/NVIDIA/vmx-audit/pkg/errors"
)

func writeTemp(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestGetLines(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		opts     []Option
		expected []string
	}{
		{
			name:     "basic lines",
			content:  "one\ntwo\nthree",
			expected: []string{"one", "two", "three"},
		},
		{
			name:     "drops empty lines",
			content:  "one\n\n  \ntwo\n",
			expected: []string{"one", "two"},
		},
		{
			name:     "crlf line endings",
			content:  "one\r\ntwo\r\n",
			expected: []string{"one", "two"},
		},
		{
			name:     "comments kept by default",
			content:  "# heading\nvalue = 1",
			expected: []string{"# heading", "value = 1"},
		},
		{
			name:     "comments skipped when configured",
			content:  "# heading\nvalue = 1",
			opts:     []Option{WithSkipComments(true)},
			expected: []string{"value = 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, "f.txt", []byte(tt.content))
			lines, err := NewParser(tt.opts...).GetLines(path)
			if err != nil {
				t.Fatalf("GetLines failed: %v", err)
			}
			if len(lines) != len(tt.expected) {
				t.Fatalf("expected %d lines, got %d: %q", len(tt.expected), len(lines), lines)
			}
			for i := range tt.expected {
				if lines[i] != tt.expected[i] {
					t.Errorf("line %d: expected %q, got %q", i, tt.expected[i], lines[i])
				}
			}
		})
	}
}

func TestGetLines_UTF16(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	content, err := enc.Bytes([]byte("alpha = \"1\"\nbeta = \"2\"\n"))
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	path := writeTemp(t, "utf16.txt", content)

	lines, err := NewParser().GetLines(path)
	if err != nil {
		t.Fatalf("GetLines failed: %v", err)
	}
	if len(lines) != 2 || lines[0] != `alpha = "1"` {
		t.Fatalf("unexpected lines: %q", lines)
	}
}

func TestGetLines_UTF8BOM(t *testing.T) {
	path := writeTemp(t, "bom.txt", append([]byte{0xEF, 0xBB, 0xBF}, []byte("key = v\n")...))

	lines, err := NewParser().GetLines(path)
	if err != nil {
		t.Fatalf("GetLines failed: %v", err)
	}
	if len(lines) != 1 || lines[0] != "key = v" {
		t.Fatalf("unexpected lines: %q", lines)
	}
}

func TestGetLines_Errors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		if _, err := NewParser().GetLines(""); err == nil {
			t.Error("expected error for empty path")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := NewParser().GetLines(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("exceeds max size", func(t *testing.T) {
		path := writeTemp(t, "big.txt", []byte("0123456789"))
		if _, err := NewParser(WithMaxSize(5)).GetLines(path); err == nil {
			t.Error("expected error for oversized file")
		}
	})

	t.Run("invalid utf8", func(t *testing.T) {
		path := writeTemp(t, "bin.txt", []byte{0x80, 0x81, 0x82})
		if _, err := NewParser().GetLines(path); err == nil {
			t.Error("expected error for invalid UTF-8 content")
		}
	})
}

func TestGetLines_ErrorCodes(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		opts     []Option
		wantCode apperrors.ErrorCode
	}{
		{
			name:     "empty path",
			path:     func(*testing.T) string { return "" },
			wantCode: apperrors.ErrCodeInvalidInput,
		},
		{
			name: "missing file",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nope")
			},
			wantCode: apperrors.ErrCodeNotFound,
		},
		{
			name: "unreadable file",
			path: func(t *testing.T) string {
				// A directory bearing the file name makes the read
				// fail regardless of the uid running the tests.
				path := filepath.Join(t.TempDir(), "dir.vmx")
				if err := os.Mkdir(path, 0o755); err != nil {
					t.Fatal(err)
				}
				return path
			},
			wantCode: apperrors.ErrCodeUnreadable,
		},
		{
			name: "oversized file",
			path: func(t *testing.T) string {
				return writeTemp(t, "big.txt", []byte("0123456789"))
			},
			opts:     []Option{WithMaxSize(5)},
			wantCode: apperrors.ErrCodeInvalidInput,
		},
		{
			name: "invalid utf8",
			path: func(t *testing.T) string {
				return writeTemp(t, "bin.txt", []byte{0x80, 0x81, 0x82})
			},
			wantCode: apperrors.ErrCodeUnreadable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser(tt.opts...).GetLines(tt.path(t))
			if err == nil {
				t.Fatal("expected error")
			}
			var serr *apperrors.StructuredError
			if !errors.As(err, &serr) {
				t.Fatalf("expected StructuredError, got %T: %v", err, err)
			}
			if serr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, serr.Code)
			}
		})
	}
}

func TestGetMap(t *testing.T) {
	content := `product.version = "17.5.2"
product.name = "Workstation"
noDelimiterLine
dup = first
dup = second
`
	path := writeTemp(t, "config", []byte(content))

	m, err := NewParser(WithVTrimChars(`"`)).GetMap(path)
	if err != nil {
		t.Fatalf("GetMap failed: %v", err)
	}

	if m["product.version"] != "17.5.2" {
		t.Errorf("expected 17.5.2, got %q", m["product.version"])
	}
	if m["product.name"] != "Workstation" {
		t.Errorf("expected Workstation, got %q", m["product.name"])
	}
	if m["dup"] != "second" {
		t.Errorf("expected later duplicate to win, got %q", m["dup"])
	}
	if _, ok := m["noDelimiterLine"]; ok {
		t.Error("expected line without delimiter to be dropped")
	}
}

func TestGetMap_CustomDelimiter(t *testing.T) {
	path := writeTemp(t, "colon", []byte("a: 1\nb: 2\n"))

	m, err := NewParser(WithKVDelimiter(":")).GetMap(path)
	if err != nil {
		t.Fatalf("GetMap failed: %v", err)
	}
	if m["a"] != "1" || m["b"] != "2" {
		t.Errorf("unexpected map: %+v", m)
	}
}
