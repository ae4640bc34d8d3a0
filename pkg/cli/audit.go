/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/vmx-audit/pkg/auditor"
	"github.com/NVIDIA/vmx-audit/pkg/collector"
	apperrors "github.com/NVIDIA/vmx-audit/pkg/errors"
	"github.com/NVIDIA/vmx-audit/pkg/serializer"
)

func auditCmd() *cli.Command {
	return &cli.Command{
		Name:                  "audit",
		EnableShellCompletion: true,
		Usage:                 "Extract audit records from VM descriptors under a directory tree",
		Description: `Walk a directory tree, locate VM descriptor (.vmx) files, and extract
their configuration into a flat audit record collection:
  - every key/value pair in each descriptor
  - the declared virtual hardware version alongside each record
  - snapshot metadata from the sibling .vmsd file, when present
  - the host product version (from VMware config files or the
    VMX_AUDIT_PRODUCT_VERSION environment variable)

Files that cannot be read produce a single error record instead of
failing the run, so one damaged VM never hides the rest of the estate.

The audit can be output in CSV (default), JSON, YAML, or table format.

# Examples

Audit a datastore to stdout as CSV:
  vmxaudit audit --root /vmfs/volumes/datastore1

Write JSON to a file:
  vmxaudit audit --root /var/lib/vmware --format json --output audit.json

Write the same audit to several files at once:
  vmxaudit audit -r /vms -o audit.csv -o /srv/reports/audit.csv`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "root",
				Aliases:  []string{"r"},
				Required: true,
				Usage:    "Root directory to scan for VM descriptors",
				Sources:  cli.EnvVars("VMX_AUDIT_ROOT"),
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			root := cmd.String("root")
			info, err := os.Stat(root)
			if err != nil {
				return apperrors.Wrap(apperrors.ErrCodeInvalidInput,
					fmt.Sprintf("invalid --root %q", root), err)
			}
			if !info.IsDir() {
				return apperrors.New(apperrors.ErrCodeInvalidInput,
					fmt.Sprintf("invalid --root %q: not a directory", root))
			}

			a := auditor.Auditor{
				Version: version,
				Root:    root,
				Factory: collector.NewDefaultFactory(),
			}

			result, err := a.Run(ctx)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			out := buildSerializer(outFormat, cmd.StringSlice("output"))
			if err := out.Serialize(ctx, result); err != nil {
				return fmt.Errorf("failed to serialize audit: %w", err)
			}
			if c, ok := out.(serializer.Closer); ok {
				if err := c.Close(); err != nil {
					return fmt.Errorf("failed to close output: %w", err)
				}
			}

			slog.Debug("audit written",
				"records", len(result.Records),
				"format", outFormat,
				"outputs", cmd.StringSlice("output"))
			return nil
		},
	}
}
