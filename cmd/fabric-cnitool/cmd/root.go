package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.fabricnet.io/fabric-cni/pkg/config"
)

// NewRootCmd assembles fabric-cnitool's command tree.
func NewRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "fabric-cnitool",
		Short:         "Diagnostic CLI for the fabric-cni plugin",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().String("config", config.DefaultPath, "path to the daemon configuration file")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print fabric-cnitool's version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}

	root.AddCommand(versionCmd)
	root.AddCommand(newListEndpointsCmd())
	root.AddCommand(newCheckIPAMCmd())
	root.AddCommand(newLogsCmd())
	return root
}
