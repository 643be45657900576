// Command gcat computes grid convergence indices for three-grid studies.
package main

import (
	"os"

	"github.com/gcat/gcat/pkg/cli"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	os.Exit(cli.Run(version))
}
