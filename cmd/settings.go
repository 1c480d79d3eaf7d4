package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phatli/obsidian-custom-attachment-location/cmd/config"
)

func NewConfigCmd(rt **config.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and update attachment settings",
	}

	cmd.AddCommand(newConfigShowCmd(rt))
	cmd.AddCommand(newConfigSetCmd(rt))

	return cmd
}

func newConfigShowCmd(rt **config.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := *rt
			data, err := yaml.Marshal(r.Settings)
			if err != nil {
				return fmt.Errorf("marshal settings: %w", err)
			}
			fmt.Print(string(data))
			fmt.Printf("# relative mode: %v\n", r.Settings.RelativeMode())
			return nil
		},
	}
}

func newConfigSetCmd(rt **config.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Update one setting and persist it",
		Long: `Update a setting and write it back to the vault's settings file.

Keys:
  attachment_folder_template   attachment folder template ("./" prefix selects relative mode)
  pasted_file_name_template    generated attachment base name template
  date_time_format             format of the ${date} placeholder
  auto_rename_folder           relocate the attachment folder on document rename
  auto_rename_files            also rename attachment files on document rename

Examples:
  attachloc config set attachment_folder_template './assets/${filename}'
  attachloc config set auto_rename_files true`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := *rt
			key, value := args[0], args[1]

			switch key {
			case "attachment_folder_template":
				r.Settings.AttachmentFolderTemplate = value
			case "pasted_file_name_template":
				r.Settings.PastedFileNameTemplate = value
			case "date_time_format":
				r.Settings.DateTimeFormat = value
			case "auto_rename_folder", "auto_rename_files":
				b, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("value for %s must be a boolean: %w", key, err)
				}
				if key == "auto_rename_folder" {
					r.Settings.AutoRenameFolder = b
				} else {
					r.Settings.AutoRenameFiles = b
				}
			default:
				return fmt.Errorf("unknown setting: %s", key)
			}

			if err := r.SaveSettings(); err != nil {
				return err
			}

			fmt.Printf("Set %s = %s\n", key, value)
			if key == "attachment_folder_template" {
				fmt.Printf("Relative mode: %v\n", r.Settings.RelativeMode())
			}
			return nil
		},
	}
}
