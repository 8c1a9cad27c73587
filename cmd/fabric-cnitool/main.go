// Command fabric-cnitool is an operator-facing diagnostic CLI: it never
// runs as part of the CNI ADD/DEL path, but reads the same configuration
// and datastore an installed plugin would, for debugging a node.
package main

import (
	"fmt"
	"os"

	"go.fabricnet.io/fabric-cni/cmd/fabric-cnitool/cmd"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := cmd.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
