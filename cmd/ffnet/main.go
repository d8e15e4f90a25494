// Command ffnet inspects, converts and creates feed-forward network
// parameter files.
package main

import (
	"os"

	"github.com/ffnet-ml/ffnet/internal/cli"
)

// Injected via ldflags at build time.
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
