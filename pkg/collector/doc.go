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

// Package collector defines the interfaces for the per-source extraction
// stages of an audit run, and a factory for constructing their production
// implementations.
//
// # Sources
//
// Descriptor (descriptor): parses a VM descriptor (.vmx) file into ordered
// key/value records, tracking the running hardware version.
//
// Snapshot metadata (snapshot): parses a VM's sibling .vmsd file into
// per-snapshot records.
//
// Host (host): resolves the installed virtualization product version as
// run-level metadata.
//
// # Factory Pattern
//
// The Factory interface enables dependency injection and testing by
// abstracting collector creation:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithMaxFileSize(1 << 20),
//	)
//	parser := factory.CreateDescriptorParser()
//
// All parsers convert per-file read failures into error-tagged records
// instead of error returns; the auditor therefore never aborts a run on a
// single unreadable file.
package collector
