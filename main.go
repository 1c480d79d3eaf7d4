package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/phatli/obsidian-custom-attachment-location/cmd"
	"github.com/phatli/obsidian-custom-attachment-location/cmd/config"
)

func main() {
	var rt *config.Runtime

	rootCmd := &cobra.Command{
		Use:   "attachloc",
		Short: "Manage attachment locations in a markdown vault",
		Long: `attachloc keeps image attachments co-located with the documents that
own them. Attachment folders and file names are derived from templates
over the document's name and location, and stay synchronized when a
document is renamed.`,
		SilenceUsage: true,
	}
	config.AddGlobalFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		if c.Name() == "version" || c.Name() == "help" {
			return nil
		}
		var err error
		rt, err = config.Init()
		return err
	}
	rootCmd.PersistentPostRunE = func(c *cobra.Command, args []string) error {
		if rt != nil {
			return rt.Close()
		}
		return nil
	}

	rootCmd.AddCommand(cmd.NewPasteCmd(&rt))
	rootCmd.AddCommand(cmd.NewDropCmd(&rt))
	rootCmd.AddCommand(cmd.NewRenameCmd(&rt))
	rootCmd.AddCommand(cmd.NewConfigCmd(&rt))
	rootCmd.AddCommand(cmd.NewScanCmd(&rt))
	rootCmd.AddCommand(cmd.NewListCmd(&rt))
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
