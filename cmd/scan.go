package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/phatli/obsidian-custom-attachment-location/cmd/config"
	"github.com/phatli/obsidian-custom-attachment-location/pkg/service"
	"github.com/phatli/obsidian-custom-attachment-location/pkg/vault"
)

func NewScanCmd(rt **config.Runtime) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Build or refresh the embed index",
		Long: `Walk the vault's markdown documents and record their embedded links in
the embed index. Documents whose recorded modification time is current
are skipped unless --full is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := *rt
			ctx := context.Background()

			indexed := 0
			seen := make(map[string]bool)
			err := r.Vault.WalkDocuments(ctx, service.DocumentExtension, func(p string, mtime time.Time, content []byte) error {
				seen[p] = true
				if !full {
					recorded, ok, err := r.Index.ModTime(p)
					if err == nil && ok && recorded == mtime.Unix() {
						return nil
					}
				}
				if err := r.Index.IndexDocument(p, mtime.Unix(), vault.ScanEmbeds(string(content))); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to index %s: %v\n", p, err)
					return nil
				}
				indexed++
				return nil
			})
			if err != nil {
				return fmt.Errorf("scan vault: %w", err)
			}

			// Prune documents that no longer exist on disk.
			known, err := r.Index.Documents()
			if err != nil {
				return fmt.Errorf("list indexed documents: %w", err)
			}
			for _, p := range known {
				if seen[p] {
					continue
				}
				if err := r.Index.Forget(p); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to prune %s: %v\n", p, err)
				}
			}

			fmt.Printf("Indexed %d document(s)\n", indexed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Reindex every document regardless of modification time")

	return cmd
}
