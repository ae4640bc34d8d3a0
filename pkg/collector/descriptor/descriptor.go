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

package descriptor

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/NVIDIA/vmx-audit/pkg/audit"
	"github.com/NVIDIA/vmx-audit/pkg/collector/file"
)

// kvPattern extracts one configuration entry from a descriptor line:
// group 1 is the longest run of non-whitespace, non-"=" characters
// immediately before "=", group 2 is everything after "=" to end of line.
var kvPattern = regexp.MustCompile(`([^=\s]+)\s*=\s*(.*)$`)

// Option configures the Parser.
type Option func(*Parser)

// WithMaxFileSize sets the maximum descriptor file size in bytes.
func WithMaxFileSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithVersionKey overrides the configuration key tracked as the running
// hardware version. Default is audit.KeyHardwareVersion.
func WithVersionKey(key string) Option {
	return func(p *Parser) {
		p.versionKey = key
	}
}

// Parser parses one VM descriptor file into ordered audit records.
type Parser struct {
	maxSize    int
	versionKey string
}

// NewParser creates a descriptor parser with the provided options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		maxSize:    1 << 20,
		versionKey: audit.KeyHardwareVersion,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads the descriptor file at path and returns one record per
// configuration line, in source order, attributed to vmName.
//
// Every matching line emits a record even when its key repeats earlier in
// the file; a separate running map tracks only the latest hardware-version
// value. A record's VMVersion is the map state before its own line is
// stored, so the hardware-version line itself still carries the previous
// (initially empty) value and the new value applies from the next record
// onward. Lines that do not match are skipped silently.
//
// A file that cannot be read or decoded yields exactly one error-tagged
// record in place of its content; the failure is logged and never
// propagated, keeping one bad descriptor from aborting a whole run.
func (p *Parser) Parse(ctx context.Context, path, vmName string) []audit.Record {
	if err := ctx.Err(); err != nil {
		return errorRecord(vmName, path, err)
	}

	reader := file.NewParser(file.WithMaxSize(p.maxSize))
	lines, err := reader.GetLines(path)
	if err != nil {
		return errorRecord(vmName, path, err)
	}

	// Two independent pieces of state updated per line: the append-only
	// output and the hardware-version lookup map. The map must never be
	// used to deduplicate output.
	kv := make(map[string]string, len(lines))
	records := make([]audit.Record, 0, len(lines))

	for _, line := range lines {
		key, value, ok := matchLine(line)
		if !ok {
			continue
		}

		records = append(records, audit.Record{
			VMName:    vmName,
			Key:       key,
			Value:     value,
			VMVersion: kv[p.versionKey],
		})
		kv[key] = value
	}

	slog.Debug("descriptor parsed",
		"vm", vmName,
		"path", path,
		"records", len(records),
		"hwVersion", kv[p.versionKey],
	)

	return records
}

// matchLine applies the key/value extraction rule to a single descriptor
// line. The leading comment-marker region (a run of "#" and whitespace) is
// stripped before matching, so a commented-out entry still parses while a
// pure comment without "=" never matches. The value has one optional
// leading and one optional trailing double quote stripped, each
// independently of the other.
func matchLine(line string) (key, value string, ok bool) {
	line = strings.TrimLeft(line, "# \t")

	m := kvPattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}

	key = strings.TrimSpace(m[1])
	value = strings.TrimSpace(m[2])
	value = strings.TrimPrefix(value, `"`)
	value = strings.TrimSuffix(value, `"`)

	return key, value, true
}

func errorRecord(vmName, path string, err error) []audit.Record {
	slog.Error("failed to read descriptor file",
		"vm", vmName,
		"path", path,
		"error", err.Error(),
	)
	return []audit.Record{{
		VMName: vmName,
		Key:    audit.KeyError,
		Value:  err.Error(),
	}}
}
