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
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// MultiWriter fans one payload out to several serializers. Destinations are
// independent files or streams, so writes run concurrently; the audit data
// itself is immutable by the time it is serialized.
type MultiWriter struct {
	serializers []Serializer
}

// NewMultiWriter creates a MultiWriter over the given serializers.
func NewMultiWriter(serializers ...Serializer) *MultiWriter {
	return &MultiWriter{
		serializers: serializers,
	}
}

// Serialize writes data to every destination and returns the first error
// encountered, canceling the remaining writes.
func (m *MultiWriter) Serialize(ctx context.Context, data any) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, s := range m.serializers {
		s := s
		g.Go(func() error {
			return s.Serialize(gctx, data)
		})
	}

	return g.Wait()
}

// Close closes every underlying serializer that implements Closer,
// returning all close errors joined.
func (m *MultiWriter) Close() error {
	var errs []error
	for _, s := range m.serializers {
		if c, ok := s.(Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
