package cli

import (
	"github.com/spf13/cobra"
)

// commandCommand creates the "command" command, which prints the package
// management command each detected package manager would run. Nothing is
// executed.
func (c *CLI) commandCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "command [path]",
		Short: "Print the package-management command for a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadSettings(args)
			if err != nil {
				return err
			}
			adapters, err := c.activeAdapters(c.adapterOptions(cfg))
			if err != nil {
				return err
			}

			for _, a := range adapters {
				printKeyValue(cmd.OutOrStdout(), a.Name(), a.PackageManagementCommand())
				if !a.Installed() {
					printWarning("%s is not installed", a.PackageManagementCommand())
				}
			}
			return nil
		},
	}
}
