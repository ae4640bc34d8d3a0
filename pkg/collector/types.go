package collector

import (
	"context"

	"github.com/NVIDIA/vmx-audit/pkg/audit"
)

// DescriptorParser parses one VM descriptor file into ordered audit records.
// Read failures are converted into a single error-tagged record, never an
// error return, so one bad file cannot abort a run.
type DescriptorParser interface {
	Parse(ctx context.Context, path, vmName string) []audit.Record
}

// SnapshotParser locates and parses a VM's snapshot metadata file.
// An absent file yields no records; an unreadable one yields a single
// error-tagged record.
type SnapshotParser interface {
	Parse(ctx context.Context, dir, vmName string) []audit.Record
}

// HostResolver resolves the installed virtualization product version of the
// audit host, or the "Not Detected" sentinel.
type HostResolver interface {
	Resolve(ctx context.Context) string
}
