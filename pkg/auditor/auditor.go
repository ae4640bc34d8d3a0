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

package auditor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/NVIDIA/vmx-audit/pkg/audit"
	"github.com/NVIDIA/vmx-audit/pkg/collector"
	"github.com/NVIDIA/vmx-audit/pkg/header"
	"github.com/NVIDIA/vmx-audit/pkg/scanner"
)

const (
	// APIVersion is the schema version of the Audit document.
	APIVersion = "v1"

	// FullAPIVersion is the fully qualified API version written to headers.
	FullAPIVersion = "audit.nvidia.com/" + APIVersion
)

// Auditor performs one full audit run over a filesystem root. All run state
// lives in the returned Audit value; the Auditor itself carries only
// configuration and can be reused for subsequent runs, each recomputing
// from scratch.
type Auditor struct {
	// Version is the tool version recorded in the audit header.
	Version string

	// Root is the directory tree to scan for VM descriptor files. The
	// caller is responsible for validating it before a run.
	Root string

	// Factory is the collector factory to use. If nil, the default
	// factory is used.
	Factory collector.Factory

	// Scanner is the descriptor file scanner. If nil, a default scanner
	// is used.
	Scanner *scanner.Scanner
}

// Run executes one complete scan-parse-aggregate cycle and returns a fresh
// Audit. Execution is sequential and single-threaded: VMs are processed in
// discovery order, descriptor records before snapshot records per VM, and
// the result becomes visible only when Run returns. Per-file read failures
// surface as error-tagged records, not errors; Run itself fails only on
// context cancellation.
func (a *Auditor) Run(ctx context.Context) (*audit.Audit, error) {
	if a.Factory == nil {
		a.Factory = collector.NewDefaultFactory()
	}
	if a.Scanner == nil {
		a.Scanner = scanner.New()
	}

	start := time.Now()
	defer func() {
		runDuration.Observe(time.Since(start).Seconds())
	}()

	slog.Debug("starting audit run", "root", a.Root)

	result := audit.New()
	result.Init(header.KindAudit, FullAPIVersion, a.Version)
	result.Metadata["root"] = a.Root
	result.HostVersion = a.Factory.CreateHostResolver().Resolve(ctx)

	vms, err := a.Scanner.Scan(ctx, a.Root)
	if err != nil {
		runsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to scan %q: %w", a.Root, err)
	}

	descriptors := a.Factory.CreateDescriptorParser()
	snapshots := a.Factory.CreateSnapshotParser()

	var fileErrors int
	for _, vm := range vms {
		// Cancellation is honored between files; a file in progress is
		// always finished or failed whole.
		if err := ctx.Err(); err != nil {
			runsTotal.WithLabelValues("canceled").Inc()
			return nil, err
		}

		for _, r := range descriptors.Parse(ctx, vm.Path, vm.Name) {
			if r.IsError() {
				fileErrors++
				fileErrorsTotal.WithLabelValues("descriptor").Inc()
			}
			result.Records = append(result.Records, r)
		}
		for _, r := range snapshots.Parse(ctx, vm.Dir, vm.Name) {
			if r.IsError() {
				fileErrors++
				fileErrorsTotal.WithLabelValues("snapshot").Inc()
			}
			result.Records = append(result.Records, r)
		}
	}

	runsTotal.WithLabelValues("success").Inc()
	recordCount.Set(float64(len(result.Records)))

	slog.Info("audit run complete",
		"root", a.Root,
		"vms", len(vms),
		"records", len(result.Records),
		"fileErrors", fileErrors,
		"hostVersion", result.HostVersion,
		"duration", time.Since(start).String(),
	)

	return result, nil
}
