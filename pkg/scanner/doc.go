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

// Package scanner discovers VM descriptor files under a filesystem root.
//
// Discovery is recursive and best-effort: unreadable subtrees are skipped
// rather than surfaced as errors, matching inventory semantics where a
// partially readable tree still yields a useful audit. Results are sorted
// by base file name so repeated scans over the same tree produce the same
// order regardless of the OS directory enumeration order.
package scanner
