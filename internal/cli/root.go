package cli

import (
	"github.com/spf13/cobra"
)

// rootCommand creates the "root" command, which tells whether a path is
// the top-level project or a module nested in a parent project.
func (c *CLI) rootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "root [path]",
		Short: "Tell whether a path is a project root or a nested module",
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
				isRoot, err := a.IsProjectRoot(cmd.Context())
				if err != nil {
					return err
				}
				status := "module"
				if isRoot {
					status = "project root"
				}
				printKeyValue(cmd.OutOrStdout(), a.Name(), status)
			}
			return nil
		},
	}
}
