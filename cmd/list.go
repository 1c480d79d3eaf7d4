package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/phatli/obsidian-custom-attachment-location/cmd/config"
	"github.com/phatli/obsidian-custom-attachment-location/pkg/vault"
)

func NewListCmd(rt **config.Runtime) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list [document]",
		Short: "List indexed image attachments per document",
		Long: `List the image attachments recorded in the embed index, grouped by
document. Without an argument every indexed document is listed; run
'attachloc scan' first to populate the index.

Examples:
  attachloc list
  attachloc list notes/Idea.md
  attachloc list --all          # include non-image embeds`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := *rt
			ctx := context.Background()

			var docs []string
			if len(args) == 1 {
				docs = []string{vault.NormalizePath(args[0])}
			} else {
				var err error
				docs, err = r.Index.Documents()
				if err != nil {
					return fmt.Errorf("list documents: %w", err)
				}
			}

			titler := cases.Title(language.English)
			for _, doc := range docs {
				embeds, err := r.Index.GetEmbeds(ctx, doc)
				if err != nil {
					return fmt.Errorf("get embeds for %s: %w", doc, err)
				}
				if embeds == nil {
					if len(args) == 1 {
						return fmt.Errorf("document not indexed: %s (run 'attachloc scan')", doc)
					}
					continue
				}

				var links []string
				for _, e := range embeds {
					if all || isImageLink(e.Link) {
						links = append(links, e.Link)
					}
				}
				if len(links) == 0 {
					continue
				}

				title := titler.String(strings.ReplaceAll(vault.BaseName(doc), "-", " "))
				fmt.Printf("%s (%s)\n", title, doc)
				for _, link := range links {
					fmt.Printf("  %s\n", link)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include non-image embeds")

	return cmd
}

func isImageLink(link string) bool {
	lower := strings.ToLower(link)
	return strings.HasSuffix(lower, ".png") ||
		strings.HasSuffix(lower, ".jpg") ||
		strings.HasSuffix(lower, ".jpeg")
}
