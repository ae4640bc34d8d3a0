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

package serializer

import (
	"encoding/csv"
	"fmt"

	"github.com/NVIDIA/vmx-audit/pkg/audit"
)

// csvColumns is the fixed export column order. Consumers depend on it;
// do not reorder.
var csvColumns = []string{"VMName", "Key", "Value", "VMVersion", "SnapshotUID"}

// serializeCSV writes one row per audit record with a leading header row,
// using standard RFC 4180 quoting. Accepts an *audit.Audit, an audit.Audit,
// or a bare []audit.Record.
func (w *Writer) serializeCSV(data any) error {
	records, err := extractRecords(data)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w.output)

	if err := cw.Write(csvColumns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range records {
		row := []string{r.VMName, r.Key, r.Value, r.VMVersion, r.SnapshotUID}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return nil
}

func extractRecords(data any) ([]audit.Record, error) {
	switch v := data.(type) {
	case *audit.Audit:
		if v == nil {
			return nil, fmt.Errorf("nil audit")
		}
		return v.Records, nil
	case audit.Audit:
		return v.Records, nil
	case []audit.Record:
		return v, nil
	default:
		return nil, fmt.Errorf("CSV format requires audit data, got %T", data)
	}
}
