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

// Package audit defines the flat record model shared by every stage of an
// audit run.
//
// # Overview
//
// One audit run over a filesystem tree yields a single Audit value: run
// metadata (timestamp, run id, root path, resolved host product version)
// plus an ordered slice of Record values. Each Record is one fact extracted
// from a VM descriptor file or its sibling snapshot metadata file, or a
// synthetic error entry standing in for a file that could not be read.
//
// # Ordering
//
// Record order is significant and stable: VMs appear in ascending name
// order, and within a VM descriptor records precede snapshot records, each
// preserving source-file line order. Consumers (exporters, renderers) must
// not reorder.
//
// # Lifecycle
//
// An Audit is populated synchronously by a single run and never mutated
// afterwards. Re-running produces a new Audit reflecting only the current
// filesystem state; no data carries over between runs.
package audit
