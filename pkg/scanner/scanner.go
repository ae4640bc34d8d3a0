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

package scanner

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
)

// DescriptorExt is the file extension identifying VM descriptor files.
const DescriptorExt = ".vmx"

// VM describes one discovered virtual machine descriptor file.
type VM struct {
	// Name is the descriptor file's base name without extension.
	Name string

	// Path is the full path of the descriptor file.
	Path string

	// Dir is the directory containing the descriptor file, used to locate
	// the sibling snapshot metadata file.
	Dir string
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithExtension overrides the descriptor file extension marker.
// The extension must include the leading dot.
func WithExtension(ext string) Option {
	return func(s *Scanner) {
		s.ext = ext
	}
}

// Scanner discovers VM descriptor files under a root path.
type Scanner struct {
	ext string
}

// New creates a Scanner with the provided options.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		ext: DescriptorExt,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan enumerates every descriptor file anywhere under root, recursively,
// and returns the results sorted ascending by base file name (full path as
// tie-break) for deterministic processing order. Unreadable subtrees and a
// missing root are not errors: affected entries are simply absent from the
// result. Validating the root itself is the caller's concern.
func (s *Scanner) Scan(ctx context.Context, root string) ([]VM, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var vms []VM

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Best-effort inventory: skip what cannot be listed.
			slog.Debug("skipping unreadable entry", "path", path, "error", err.Error())
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), s.ext) {
			return nil
		}

		name := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		vms = append(vms, VM{
			Name: name,
			Path: path,
			Dir:  filepath.Dir(path),
		})
		return nil
	})
	if err != nil {
		// WalkDir only surfaces errors we returned ourselves, i.e. ctx.
		return nil, err
	}

	sort.Slice(vms, func(i, j int) bool {
		if vms[i].Name != vms[j].Name {
			return vms[i].Name < vms[j].Name
		}
		return vms[i].Path < vms[j].Path
	})

	slog.Debug("descriptor scan complete", "root", root, "found", len(vms))
	return vms, nil
}
