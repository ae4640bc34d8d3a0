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

// Package snapshot parses VM snapshot metadata (.vmsd) files into audit
// records.
//
// Metadata files use dotted keys under a snapshot namespace:
//
//	snapshot.0.displayName = "Before upgrade"
//	snapshot.0.uid = "1"
//	snapshot.numSnapshots = "1"
//
// Only displayName entries carry a human-readable description; every other
// retained line falls back to its raw text. Line matching is an ordered
// list of pure matcher functions, tried in sequence, first match wins.
package snapshot
