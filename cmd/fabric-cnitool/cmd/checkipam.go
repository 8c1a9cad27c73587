package cmd

import (
	"fmt"
	"os"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"go.fabricnet.io/fabric-cni/pkg/ipam"
)

func newCheckIPAMCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-ipam [ipam-type]",
		Short: "Resolve an IPAM binary the way the plugin would at ADD time",
		Long: dedent.Dedent(`
			check-ipam walks CNI_PATH the same way the ADD path does (spec
			§4.2's left-to-right search) and reports the first executable it
			would invoke, without actually invoking it.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cniPath := os.Getenv("CNI_PATH")
			if cniPath == "" {
				return fmt.Errorf("CNI_PATH is not set; export it the way the container runtime would")
			}

			path, err := ipam.Locate(args[0], cniPath)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	return cmd
}
