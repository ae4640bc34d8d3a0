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

package host

import (
	"context"
	"log/slog"
	"os"

	"github.com/NVIDIA/vmx-audit/pkg/audit"
	"github.com/NVIDIA/vmx-audit/pkg/collector/file"
	"github.com/NVIDIA/vmx-audit/pkg/version"
)

// EnvProductVersion overrides product version resolution when set.
const EnvProductVersion = "VMX_AUDIT_PRODUCT_VERSION"

// productVersionKey is the config entry carrying the installed product
// version in the well-known product config files.
const productVersionKey = "product.version"

var defaultConfigPaths = []string{
	"/etc/vmware/config",
	"/usr/lib/vmware/config",
}

// Option configures the Resolver.
type Option func(*Resolver)

// WithConfigPaths overrides the product config file locations probed in order.
func WithConfigPaths(paths ...string) Option {
	return func(r *Resolver) {
		r.configPaths = paths
	}
}

// Resolver resolves the virtualization product version installed on the
// audit host.
type Resolver struct {
	configPaths []string
}

// NewResolver creates a Resolver with the provided options.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		configPaths: defaultConfigPaths,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the installed product version: the override environment
// variable when set, otherwise the product.version entry of the first
// readable product config file. Absence of both is a normal condition and
// yields audit.HostVersionNotDetected; Resolve never fails a run.
// Parseable version strings are normalized (build suffixes dropped).
func (r *Resolver) Resolve(ctx context.Context) string {
	if v := os.Getenv(EnvProductVersion); v != "" {
		return version.Normalize(v)
	}

	parser := file.NewParser(
		file.WithSkipComments(true),
		file.WithVTrimChars(`"'`),
	)

	for _, path := range r.configPaths {
		if err := ctx.Err(); err != nil {
			break
		}

		params, err := parser.GetMap(path)
		if err != nil {
			slog.Debug("product config not readable", "path", path, "error", err.Error())
			continue
		}

		if v, ok := params[productVersionKey]; ok && v != "" {
			slog.Debug("resolved product version", "path", path, "version", v)
			return version.Normalize(v)
		}
	}

	slog.Debug("no installed product detected")
	return audit.HostVersionNotDetected
}
