package main

import (
	"fmt"
	"os"

	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bricklint:", err)
		os.Exit(1)
	}
}
