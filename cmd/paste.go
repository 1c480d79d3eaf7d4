package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"github.com/phatli/obsidian-custom-attachment-location/cmd/config"
	"github.com/phatli/obsidian-custom-attachment-location/pkg/models"
	"github.com/phatli/obsidian-custom-attachment-location/pkg/service"
	"github.com/phatli/obsidian-custom-attachment-location/pkg/vault"
)

func NewPasteCmd(rt **config.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paste <document> <image>...",
		Short: "Attach images to a document as a paste event",
		Long: `Attach one or more images to a document, the way the host would on paste.

The attachment folder is derived from the configured template, created if
absent, and each stored image is linked at the end of the document. Files
that are not PNG or JPEG images are skipped.

Examples:
  attachloc paste notes/Idea.md screenshot.png
  attachloc paste notes/Idea.md a.png b.jpg
  attachloc -V ~/vault paste Idea.md ~/Downloads/diagram.png`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ingestFiles(*rt, args[0], args[1:], false)
		},
	}
	return cmd
}

func ingestFiles(r *config.Runtime, docArg string, images []string, drop bool) error {
	ctx := context.Background()
	docPath := vault.NormalizePath(docArg)

	exists, err := r.Vault.Exists(ctx, docPath)
	if err != nil {
		return fmt.Errorf("check document: %w", err)
	}
	if !exists {
		return fmt.Errorf("document not found in vault: %s", docPath)
	}

	payloads := make([]service.Payload, 0, len(images))
	for _, img := range images {
		data, err := os.ReadFile(img)
		if err != nil {
			return fmt.Errorf("read image %s: %w", img, err)
		}
		kind, ok := models.KindFromMIME(mimetype.Detect(data).String())
		if !ok {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: not a PNG or JPEG image\n", img)
		}
		payloads = append(payloads, service.Payload{
			Name: filepath.Base(img),
			Kind: kind,
			Data: data,
		})
	}

	evt := &service.Event{
		Document: models.DocumentRef{Path: docPath},
		Payloads: payloads,
	}
	ed := r.Vault.Editor(docPath)

	if drop {
		err = r.Service.HandleDrop(ctx, evt, ed)
	} else {
		err = r.Service.HandlePaste(ctx, evt, ed)
	}
	if err != nil {
		return err
	}

	if err := reindexDocument(ctx, r, docPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to reindex document: %v\n", err)
	}

	attached := 0
	for _, p := range payloads {
		if p.Kind.Image() {
			attached++
		}
	}
	fmt.Printf("Attached %d image(s) to %s\n", attached, docPath)
	return nil
}

// reindexDocument refreshes the embed index entry for one document.
func reindexDocument(ctx context.Context, r *config.Runtime, docPath string) error {
	content, err := r.Vault.ReadFile(ctx, docPath)
	if err != nil {
		return err
	}
	return r.Index.IndexDocument(docPath, time.Now().Unix(), vault.ScanEmbeds(string(content)))
}
