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

// Package descriptor parses VM descriptor (.vmx) files into ordered audit
// records, tracking the evolving hardware version as the file is read.
//
// Descriptor files are flat key/value text:
//
//	.encoding = "UTF-8"
//	config.version = "8"
//	virtualHW.version = "19"
//	displayName = "web01"
//	memsize = "4096"
//
// Each matching line yields one record. Output is never deduplicated by
// key; the internal key/value map exists only to carry the most recently
// seen virtualHW.version forward onto subsequent records.
package descriptor
