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

package audit

import (
	"github.com/NVIDIA/vmx-audit/pkg/header"
)

const (
	// KeySnapshotMeta tags records derived from a VM's snapshot metadata file.
	KeySnapshotMeta = "SnapshotMeta"

	// KeyError tags the single record emitted when a descriptor file
	// cannot be read.
	KeyError = "Error"

	// KeySnapshotMetaError tags the single record emitted when a snapshot
	// metadata file exists but cannot be read.
	KeySnapshotMetaError = "SnapshotMetaError"

	// KeyHardwareVersion is the descriptor key whose value is tracked as
	// the running hardware version while a descriptor file is parsed.
	KeyHardwareVersion = "virtualHW.version"

	// HostVersionNotDetected is the sentinel host product version used
	// when no installed product could be resolved.
	HostVersionNotDetected = "Not Detected"
)

// Record is one flat entry in an audit run's output collection.
// A record originates either from a descriptor file line, a snapshot
// metadata line, or a per-file read failure.
type Record struct {
	// VMName identifies the VM the record belongs to, derived from the
	// descriptor file's base name without extension.
	VMName string `json:"vmName" yaml:"vmName"`

	// Key is a literal configuration key from the descriptor file, or one
	// of the tag constants (KeySnapshotMeta, KeyError, KeySnapshotMetaError).
	Key string `json:"key" yaml:"key"`

	// Value is the configuration value, the snapshot display description,
	// or an error message for error-tagged records.
	Value string `json:"value" yaml:"value"`

	// VMVersion is the most recently observed hardware version at the
	// point this record was produced within its source file. Empty until
	// a KeyHardwareVersion line has been consumed, and always empty on
	// snapshot and error records.
	VMVersion string `json:"vmVersion,omitempty" yaml:"vmVersion,omitempty"`

	// SnapshotUID is the snapshot's internal identifier for records
	// originating from snapshot metadata; empty otherwise.
	SnapshotUID string `json:"snapshotUID,omitempty" yaml:"snapshotUID,omitempty"`
}

// IsError reports whether the record is a synthetic per-file failure record
// rather than parsed file content.
func (r Record) IsError() bool {
	return r.Key == KeyError || r.Key == KeySnapshotMetaError
}

// Audit is the complete result of one audit run: the ordered record
// collection plus run-level metadata. A new run produces a fresh Audit;
// instances are never mutated after the run that produced them completes.
type Audit struct {
	header.Header `json:",inline" yaml:",inline"`

	// HostVersion is the resolved installed product version of the host,
	// or HostVersionNotDetected. Independent of any record's VMVersion.
	HostVersion string `json:"hostVersion" yaml:"hostVersion"`

	// Records holds every record produced by the run, ordered by VM name
	// ascending with descriptor records preceding snapshot records per VM.
	Records []Record `json:"records" yaml:"records"`
}

// New creates an empty Audit ready to be populated by a run.
func New() *Audit {
	return &Audit{
		Records: make([]Record, 0),
	}
}

// VMNames returns the distinct VM names present in the collection,
// in first-appearance order.
func (a *Audit) VMNames() []string {
	seen := make(map[string]bool, len(a.Records))
	names := make([]string, 0, len(a.Records))
	for _, r := range a.Records {
		if !seen[r.VMName] {
			seen[r.VMName] = true
			names = append(names, r.VMName)
		}
	}
	return names
}
