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

// Package serializer provides utilities for serializing audit data to
// various formats.
//
// The package supports four output formats:
//   - CSV: One row per audit record with a fixed column order
//     (VMName, Key, Value, VMVersion, SnapshotUID) and a header row
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable configuration format
//   - Table: Human-readable tabular output with flattened keys
//
// Usage:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatCSV, path)
//	defer writer.Close() // Important: close to release file handles
//	if err := writer.Serialize(ctx, result); err != nil {
//		slog.Error("export failed", "error", err)
//	}
//
// Multiple destinations can be written in one call:
//
//	mw := serializer.NewMultiWriter(csvWriter, jsonWriter)
//	defer mw.Close()
//	err := mw.Serialize(ctx, result)
//
// The package automatically handles buffer flushing, flattening nested
// structures for table format, and resource cleanup via the Close() method.
package serializer
