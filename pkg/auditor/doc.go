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

// Package auditor orchestrates one complete audit run: it scans the root
// for descriptor files, runs the descriptor and snapshot metadata parsers
// per discovered VM, resolves the host product version, and aggregates
// everything into a single ordered Audit document.
//
// Runs are synchronous and single-threaded. File handles are scoped to one
// file at a time, results are exposed only at run completion, and repeating
// a run discards all prior state, so the output always reflects the
// filesystem as of the current run only.
//
// Collector construction is abstracted behind collector.Factory for test
// injection; serialization of the result is a consumer concern (see
// pkg/serializer).
package auditor
