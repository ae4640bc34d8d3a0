package collector

import (
	"github.com/NVIDIA/vmx-audit/pkg/collector/descriptor"
	"github.com/NVIDIA/vmx-audit/pkg/collector/host"
	"github.com/NVIDIA/vmx-audit/pkg/collector/snapshot"
)

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateDescriptorParser() DescriptorParser
	CreateSnapshotParser() SnapshotParser
	CreateHostResolver() HostResolver
}

// Option configures the DefaultFactory.
type Option func(*DefaultFactory)

// WithMaxFileSize sets the maximum size of descriptor and snapshot metadata
// files handed to the parsers.
func WithMaxFileSize(size int) Option {
	return func(f *DefaultFactory) {
		f.MaxFileSize = size
	}
}

// WithProductConfigPaths overrides the host product config locations probed
// by the host resolver.
func WithProductConfigPaths(paths ...string) Option {
	return func(f *DefaultFactory) {
		f.ProductConfigPaths = paths
	}
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	MaxFileSize        int
	ProductConfigPaths []string
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateDescriptorParser creates a descriptor file parser.
func (f *DefaultFactory) CreateDescriptorParser() DescriptorParser {
	var opts []descriptor.Option
	if f.MaxFileSize > 0 {
		opts = append(opts, descriptor.WithMaxFileSize(f.MaxFileSize))
	}
	return descriptor.NewParser(opts...)
}

// CreateSnapshotParser creates a snapshot metadata parser.
func (f *DefaultFactory) CreateSnapshotParser() SnapshotParser {
	var opts []snapshot.Option
	if f.MaxFileSize > 0 {
		opts = append(opts, snapshot.WithMaxFileSize(f.MaxFileSize))
	}
	return snapshot.NewParser(opts...)
}

// CreateHostResolver creates a host product version resolver.
func (f *DefaultFactory) CreateHostResolver() HostResolver {
	var opts []host.Option
	if len(f.ProductConfigPaths) > 0 {
		opts = append(opts, host.WithConfigPaths(f.ProductConfigPaths...))
	}
	return host.NewResolver(opts...)
}
