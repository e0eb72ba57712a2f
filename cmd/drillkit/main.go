package main

import (
	"fmt"
	"os"

	"github.com/drillkit/drillkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "drillkit:", err)
		os.Exit(1)
	}
}
