package cmd

import (
	"github.com/spf13/cobra"

	"github.com/phatli/obsidian-custom-attachment-location/cmd/config"
)

func NewDropCmd(rt **config.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drop <document> <image>...",
		Short: "Attach images to a document as a drop event",
		Long: `Attach one or more images to a document, the way the host would on drop.

Identical to paste except that the attachment folder is pre-created
eagerly when the folder template is not in relative mode.

Examples:
  attachloc drop notes/Idea.md screenshot.png`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ingestFiles(*rt, args[0], args[1:], true)
		},
	}
	return cmd
}
