// Package cli implements the command-line interface for the vmxaudit tool.
//
// # Overview
//
// The vmxaudit CLI extracts audit records from VM descriptor (.vmx) files
// found under a directory tree, including snapshot metadata from sibling
// .vmsd files and the host product version. It is designed for estate
// administrators auditing VM configuration at scale.
//
// # Commands
//
// audit - Extract audit records:
//
//	vmxaudit audit --root DIR [--output FILE]... [--format csv|json|yaml|table]
//
// Walks the tree under --root, parses every .vmx descriptor and its sibling
// .vmsd snapshot metadata, resolves the host product version, and writes the
// resulting record collection. Output defaults to stdout in CSV format; the
// --output flag can be repeated to write the same audit to several files.
//
// # Global Flags
//
//	--log-level    Logging verbosity: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL                  Set logging verbosity (debug, info, warn, error)
//	VMX_AUDIT_ROOT             Default value for --root
//	VMX_AUDIT_PRODUCT_VERSION  Override host product version detection
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/auditor - Audit orchestration
//   - pkg/collector - Descriptor, snapshot, and host collectors
//   - pkg/scanner - Filesystem descriptor discovery
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/vmx-audit/pkg/cli.version=1.0.0'"
package cli
