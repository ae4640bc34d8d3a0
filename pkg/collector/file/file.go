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
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	apperrors "github.com/NVIDIA/vmx-audit/pkg/errors"
)

// Option configures the Parser.
type Option func(*Parser)

// Parser reads configuration files with customizable settings.
type Parser struct {
	maxSize      int
	skipComments bool
	kvDelimiter  string
	vTrimChars   string
}

// WithMaxSize sets the maximum size (in bytes) of the file to be parsed.
// Default is 1MB.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithSkipComments sets whether to skip comment lines ("#" prefixed).
// Default is false: descriptor parsing needs to see comment-marked lines.
func WithSkipComments(skip bool) Option {
	return func(p *Parser) {
		p.skipComments = skip
	}
}

// WithKVDelimiter sets the key-value delimiter used in GetMap.
// Default is "=".
func WithKVDelimiter(kvDelim string) Option {
	return func(p *Parser) {
		p.kvDelimiter = kvDelim
	}
}

// WithVTrimChars sets characters to trim from values in GetMap.
// Default is no trimming.
func WithVTrimChars(trimChars string) Option {
	return func(p *Parser) {
		p.vTrimChars = trimChars
	}
}

// NewParser creates a new file parser with the provided options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		maxSize:      1 << 20, // 1MB default
		skipComments: false,
		kvDelimiter:  "=",
		vTrimChars:   "",
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetMap reads the file at the given path and parses its content into a map
// of key-value pairs split on the configured delimiter. Lines without the
// delimiter are ignored. Later duplicate keys overwrite earlier ones.
func (p *Parser) GetMap(path string) (map[string]string, error) {
	lines, err := p.GetLines(path)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string)
	for _, line := range lines {
		kv := strings.SplitN(line, p.kvDelimiter, 2)
		if len(kv) != 2 {
			slog.Debug("line without delimiter, skipping",
				"line", line,
				"delimiter", p.kvDelimiter,
			)
			continue
		}

		key := strings.TrimSpace(kv[0])
		value := strings.TrimSpace(kv[1])

		if p.vTrimChars != "" {
			value = strings.Trim(value, p.vTrimChars)
		}

		result[key] = value
	}

	return result, nil
}

// GetLines reads the file at the given path and splits its content into
// newline-delimited lines, with trailing carriage returns removed. Empty
// lines are dropped; line order is otherwise preserved. An error is returned
// if the file cannot be read, exceeds the maximum size, or cannot be decoded
// as text.
//
// Descriptor files written on Windows hosts may carry a byte order mark and
// be UTF-16 encoded; both variants are decoded transparently.
func (p *Parser) GetLines(path string) ([]string, error) {
	if path == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "file path cannot be empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(apperrors.ErrCodeNotFound,
				fmt.Sprintf("file %q not found", path), err)
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeUnreadable,
			fmt.Sprintf("failed to read file %q", path), err)
	}

	if len(b) > p.maxSize {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput,
			fmt.Sprintf("file %q exceeds maximum size of %d bytes", path, p.maxSize))
	}

	b, err = decodeText(path, b)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(string(b), "\n")

	result := make([]string, 0, len(parts))
	for _, part := range parts {
		cleanPart := strings.TrimRight(part, "\r")
		if strings.TrimSpace(cleanPart) == "" {
			continue
		}
		if p.skipComments && strings.HasPrefix(strings.TrimSpace(cleanPart), "#") {
			continue
		}
		result = append(result, cleanPart)
	}

	return result, nil
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decodeText converts raw file bytes to UTF-8 text. UTF-16 content is
// detected by its byte order mark; everything else must already be valid
// UTF-8 (optionally BOM prefixed).
func decodeText(path string, b []byte) ([]byte, error) {
	if bytes.HasPrefix(b, bomUTF16LE) || bytes.HasPrefix(b, bomUTF16BE) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, b)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeUnreadable,
				fmt.Sprintf("failed to decode UTF-16 content of %q", path), err)
		}
		return out, nil
	}

	b = bytes.TrimPrefix(b, bomUTF8)
	if !utf8.Valid(b) {
		return nil, apperrors.New(apperrors.ErrCodeUnreadable,
			fmt.Sprintf("content of file %q is not valid UTF-8", path))
	}
	return b, nil
}
