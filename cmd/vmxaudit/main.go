package main

import (
	"github.com/NVIDIA/vmx-audit/pkg/cli"
)

func main() {
	cli.Execute()
}
