package cmd

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phatli/obsidian-custom-attachment-location/cmd/config"
	"github.com/phatli/obsidian-custom-attachment-location/pkg/vault"
)

func NewRenameCmd(rt **config.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <document> <new-name>",
		Short: "Rename a document and synchronize its attachments",
		Long: `Rename a document and keep its attachment folder in sync.

The new name may be a bare file name (the document stays in its folder)
or a vault-relative path. With auto_rename_folder enabled the attachment
folder computed from the old name is relocated to match the new name;
with auto_rename_files enabled, attachment files embedding the old base
name are renamed as well.

Examples:
  attachloc rename notes/Idea.md Notion.md
  attachloc rename notes/Idea.md archive/Notion.md`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := *rt
			ctx := context.Background()

			oldPath := vault.NormalizePath(args[0])
			newPath := resolveNewPath(oldPath, args[1])

			exists, err := r.Vault.Exists(ctx, oldPath)
			if err != nil {
				return fmt.Errorf("check document: %w", err)
			}
			if !exists {
				return fmt.Errorf("document not found in vault: %s", oldPath)
			}
			if newPath == oldPath {
				fmt.Printf("Nothing to do: %s\n", oldPath)
				return nil
			}
			if taken, err := r.Vault.Exists(ctx, newPath); err != nil {
				return fmt.Errorf("check destination: %w", err)
			} else if taken {
				return fmt.Errorf("destination already exists: %s", newPath)
			}

			if err := r.Vault.RenameFile(ctx, &vault.FileInfo{Path: oldPath}, newPath); err != nil {
				return fmt.Errorf("rename document: %w", err)
			}
			if err := r.Index.RenameDocument(oldPath, newPath); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to update embed index: %v\n", err)
			}

			if err := r.Service.HandleRename(ctx, oldPath, vault.FileInfo{Path: newPath}); err != nil {
				return fmt.Errorf("synchronize attachments: %w", err)
			}

			fmt.Printf("Renamed document:\n")
			fmt.Printf("  From: %s\n", oldPath)
			fmt.Printf("  To:   %s\n", newPath)
			return nil
		},
	}
	return cmd
}

// resolveNewPath interprets the new-name argument: bare names stay in the
// document's folder and inherit its extension when none is given.
func resolveNewPath(oldPath, arg string) string {
	newPath := arg
	if !strings.Contains(arg, "/") {
		newPath = path.Join(vault.FolderOf(oldPath), arg)
	}
	if path.Ext(newPath) == "" {
		newPath += path.Ext(oldPath)
	}
	return vault.NormalizePath(newPath)
}
