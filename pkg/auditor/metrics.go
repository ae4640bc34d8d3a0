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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Audit run metrics
	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vmxaudit_run_duration_seconds",
			Help:    "Time taken to complete a full audit run",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60},
		},
	)

	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vmxaudit_runs_total",
			Help: "Total number of audit run attempts",
		},
		[]string{"status"}, // success, error, or canceled
	)

	recordCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vmxaudit_records",
			Help: "Number of records in the last completed audit run",
		},
	)

	fileErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vmxaudit_file_errors_total",
			Help: "Total per-file read failures recovered as error records",
		},
		[]string{"source"}, // descriptor or snapshot
	)
)
