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

package snapshot

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/NVIDIA/vmx-audit/pkg/audit"
	"github.com/NVIDIA/vmx-audit/pkg/collector/file"
)

// MetadataExt is the snapshot metadata file extension.
const MetadataExt = ".vmsd"

// namespacePrefix pre-filters lines: only lines mentioning the snapshot
// namespace are considered at all.
const namespacePrefix = "snapshot."

var (
	displayNamePattern = regexp.MustCompile(`snapshot\.([^.]+)\.displayName\s*=\s*"(.*?)"`)
	uidPattern         = regexp.MustCompile(`snapshot\.([^.]+)`)
)

// Matcher attempts to extract a snapshot UID and description from one
// metadata line. Matchers are pure functions so each rule is independently
// testable.
type Matcher func(line string) (uid, desc string, ok bool)

// matchers is tried in order per line; the first match wins.
var matchers = []Matcher{
	matchDisplayName,
	matchUID,
}

// matchDisplayName handles entries carrying a human-readable description:
//
//	snapshot.3.displayName = "Before upgrade"
func matchDisplayName(line string) (string, string, bool) {
	m := displayNamePattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// matchUID handles every other snapshot-namespace entry; the trimmed raw
// line stands in for the missing description.
func matchUID(line string) (string, string, bool) {
	m := uidPattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], strings.TrimSpace(line), true
}

// Option configures the Parser.
type Option func(*Parser)

// WithMaxFileSize sets the maximum metadata file size in bytes.
func WithMaxFileSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// Parser parses one VM's snapshot metadata file into audit records.
type Parser struct {
	maxSize int
}

// NewParser creates a snapshot metadata parser with the provided options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		maxSize: 1 << 20,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse locates <vmName>.vmsd in dir and returns one record per retained
// metadata line. An absent file is a normal condition and yields no records
// and no error; an existing but unreadable file yields a single error-tagged
// record so the failure is visible in the output without aborting the VM.
func (p *Parser) Parse(ctx context.Context, dir, vmName string) []audit.Record {
	path := filepath.Join(dir, vmName+MetadataExt)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return errorRecord(vmName, path, err)
	}

	reader := file.NewParser(file.WithMaxSize(p.maxSize))
	lines, err := reader.GetLines(path)
	if err != nil {
		return errorRecord(vmName, path, err)
	}

	var records []audit.Record
	for _, line := range lines {
		if !strings.Contains(line, namespacePrefix) {
			continue
		}
		uid, desc := matchFirst(line)
		records = append(records, audit.Record{
			VMName:      vmName,
			Key:         audit.KeySnapshotMeta,
			Value:       desc,
			SnapshotUID: uid,
		})
	}

	slog.Debug("snapshot metadata parsed",
		"vm", vmName,
		"path", path,
		"records", len(records),
	)

	return records
}

// matchFirst runs the ordered matcher list over a retained line. The
// pre-filter guarantees a UID match in practice, but an unmatched line is
// still handled: empty UID, trimmed raw line as description.
func matchFirst(line string) (uid, desc string) {
	for _, m := range matchers {
		if u, d, ok := m(line); ok {
			return u, d
		}
	}
	return "", strings.TrimSpace(line)
}

func errorRecord(vmName, path string, err error) []audit.Record {
	slog.Error("failed to read snapshot metadata file",
		"vm", vmName,
		"path", path,
		"error", err.Error(),
	)
	return []audit.Record{{
		VMName: vmName,
		Key:    audit.KeySnapshotMetaError,
		Value:  err.Error(),
	}}
}
