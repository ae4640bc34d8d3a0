/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/vmx-audit/pkg/serializer"
)

var outputFlag = &cli.StringSliceFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Usage:   "Output file path (can be repeated, default: stdout)",
}

var formatFlag = &cli.StringFlag{
	Name:    "format",
	Aliases: []string{"t"},
	Usage:   fmt.Sprintf("Output format: %s", strings.Join(serializer.SupportedFormats(), ", ")),
	Value:   string(serializer.FormatCSV),
}

// parseOutputFormat validates the --format flag value.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %s)",
			f, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// buildSerializer constructs the output serializer for the given paths.
// No paths means a single stdout writer; multiple paths fan out to each file.
func buildSerializer(format serializer.Format, paths []string) serializer.Serializer {
	if len(paths) == 0 {
		return serializer.NewStdoutWriter(format)
	}
	if len(paths) == 1 {
		return serializer.NewFileWriterOrStdout(format, paths[0])
	}
	writers := make([]serializer.Serializer, 0, len(paths))
	for _, p := range paths {
		writers = append(writers, serializer.NewFileWriterOrStdout(format, p))
	}
	return serializer.NewMultiWriter(writers...)
}
