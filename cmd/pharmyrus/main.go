// Command pharmyrus is the service CLI: `pharmyrus serve` runs the API
// server, `pharmyrus search <molecule>` runs one pipeline pass and prints
// the report.
package main

import (
	"fmt"
	"os"

	"github.com/turtacn/pharmyrus/internal/interfaces/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
