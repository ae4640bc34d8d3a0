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
	"os"
	"path/filepath"
	"testing"

	"github.com/NVIDIA/vmx-audit/pkg/audit"
)

func writeMetadata(t *testing.T, dir, vmName, content string) {
	t.Helper()
	path := filepath.Join(dir, vmName+MetadataExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write metadata: %v", err)
	}
}

func TestMatchDisplayName(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		expectedUID  string
		expectedDesc string
		expectMatch  bool
	}{
		{
			name:         "display name entry",
			line:         `snapshot.3.displayName = "Before upgrade"`,
			expectedUID:  "3",
			expectedDesc: "Before upgrade",
			expectMatch:  true,
		},
		{
			name:         "empty description",
			line:         `snapshot.7.displayName = ""`,
			expectedUID:  "7",
			expectedDesc: "",
			expectMatch:  true,
		},
		{
			name:        "non displayName entry",
			line:        `snapshot.3.uid = "12"`,
			expectMatch: false,
		},
		{
			name:        "unrelated line",
			line:        `.encoding = "UTF-8"`,
			expectMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uid, desc, ok := matchDisplayName(tt.line)
			if ok != tt.expectMatch {
				t.Fatalf("matchDisplayName(%q) ok = %v, want %v", tt.line, ok, tt.expectMatch)
			}
			if !ok {
				return
			}
			if uid != tt.expectedUID {
				t.Errorf("uid = %q, want %q", uid, tt.expectedUID)
			}
			if desc != tt.expectedDesc {
				t.Errorf("desc = %q, want %q", desc, tt.expectedDesc)
			}
		})
	}
}

func TestMatchUID(t *testing.T) {
	uid, desc, ok := matchUID(`  snapshot.0.createTimeHigh = "369838"  `)
	if !ok {
		t.Fatal("expected match")
	}
	if uid != "0" {
		t.Errorf("uid = %q, want 0", uid)
	}
	if desc != `snapshot.0.createTimeHigh = "369838"` {
		t.Errorf("expected trimmed raw line as description, got %q", desc)
	}

	if _, _, ok := matchUID("no namespace here"); ok {
		t.Error("expected no match without snapshot namespace")
	}
}

func TestParse_DisplayNameRecord(t *testing.T) {
	dir := t.TempDir()
	writeMetadata(t, dir, "web01", `snapshot.3.displayName = "Before upgrade"`+"\n")

	records := NewParser().Parse(context.Background(), dir, "web01")

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.Key != audit.KeySnapshotMeta {
		t.Errorf("Key = %q, want %q", r.Key, audit.KeySnapshotMeta)
	}
	if r.Value != "Before upgrade" {
		t.Errorf("Value = %q, want 'Before upgrade'", r.Value)
	}
	if r.SnapshotUID != "3" {
		t.Errorf("SnapshotUID = %q, want 3", r.SnapshotUID)
	}
	if r.VMVersion != "" {
		t.Errorf("expected empty VMVersion, got %q", r.VMVersion)
	}
	if r.VMName != "web01" {
		t.Errorf("VMName = %q, want web01", r.VMName)
	}
}

func TestParse_RetainsOnlyNamespaceLines(t *testing.T) {
	dir := t.TempDir()
	writeMetadata(t, dir, "vm", `.encoding = "UTF-8"
snapshot.lastUID = "2"
snapshot.1.displayName = "clean install"
snapshot.1.description = "fresh"
unrelated = "true"
`)

	records := NewParser().Parse(context.Background(), dir, "vm")

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d: %+v", len(records), records)
	}

	// Fallback entry: UID is the raw run after "snapshot.", raw line as value.
	if records[0].Value != `snapshot.lastUID = "2"` {
		t.Errorf("unexpected fallback value: %q", records[0].Value)
	}

	// displayName entry wins over the generic matcher.
	if records[1].SnapshotUID != "1" || records[1].Value != "clean install" {
		t.Errorf("unexpected displayName record: %+v", records[1])
	}
}

func TestParse_MissingFile(t *testing.T) {
	records := NewParser().Parse(context.Background(), t.TempDir(), "absent")
	if records != nil {
		t.Fatalf("expected nil records for missing metadata file, got %+v", records)
	}
}

func TestParse_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	// A directory with the metadata name exists but cannot be read as a file.
	if err := os.Mkdir(filepath.Join(dir, "vm"+MetadataExt), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	records := NewParser().Parse(context.Background(), dir, "vm")

	if len(records) != 1 {
		t.Fatalf("expected exactly 1 error record, got %d", len(records))
	}
	if records[0].Key != audit.KeySnapshotMetaError {
		t.Errorf("Key = %q, want %q", records[0].Key, audit.KeySnapshotMetaError)
	}
	if records[0].Value == "" {
		t.Error("expected non-empty failure description")
	}
}

func TestParse_PreservesLineOrder(t *testing.T) {
	dir := t.TempDir()
	writeMetadata(t, dir, "vm", `snapshot.2.displayName = "second"
snapshot.1.displayName = "first"
`)

	records := NewParser().Parse(context.Background(), dir, "vm")
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].SnapshotUID != "2" || records[1].SnapshotUID != "1" {
		t.Errorf("expected source order to be preserved, got %+v", records)
	}
}
