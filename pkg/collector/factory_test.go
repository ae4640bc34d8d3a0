package collector

import (
	"testing"
)

func TestDefaultFactory(t *testing.T) {
	f := NewDefaultFactory()

	if f.CreateDescriptorParser() == nil {
		t.Error("expected non-nil descriptor parser")
	}
	if f.CreateSnapshotParser() == nil {
		t.Error("expected non-nil snapshot parser")
	}
	if f.CreateHostResolver() == nil {
		t.Error("expected non-nil host resolver")
	}
}

func TestDefaultFactoryOptions(t *testing.T) {
	f := NewDefaultFactory(
		WithMaxFileSize(2048),
		WithProductConfigPaths("/tmp/custom/config"),
	)

	if f.MaxFileSize != 2048 {
		t.Errorf("expected max file size 2048, got %d", f.MaxFileSize)
	}
	if len(f.ProductConfigPaths) != 1 {
		t.Errorf("expected 1 config path, got %d", len(f.ProductConfigPaths))
	}
}
