package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/licensefinder/pkg/buildinfo"
)

// versionCommand creates the "version" command.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, f := range buildinfo.Fields() {
				printKeyValue(cmd.OutOrStdout(), f.Key, f.Value)
			}
		},
	}
}
