package service

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/phatli/obsidian-custom-attachment-location/pkg/dateformat"
	"github.com/phatli/obsidian-custom-attachment-location/pkg/models"
	"github.com/phatli/obsidian-custom-attachment-location/pkg/template"
	"github.com/phatli/obsidian-custom-attachment-location/pkg/vault"
)

// Payload is one binary item delivered by a paste or drop event.
type Payload struct {
	Name string
	Kind models.AttachmentKind
	Data []byte
}

// Event carries the payloads and owning document of one paste or drop.
// SuppressDefault, when set, is invoked exactly once as soon as a
// qualifying payload is found, before any side effect, so the host's
// default handling never double-inserts.
type Event struct {
	Document        models.DocumentRef
	Payloads        []Payload
	SuppressDefault func()
}

// HandlePaste ingests the image payloads of a paste event: the global
// attachment-folder setting is updated first (the storage collaborator
// consults it), then each qualifying payload is stored and linked into
// the document at the cursor, in payload order.
func (s *Service) HandlePaste(ctx context.Context, evt *Event, ed vault.Editor) error {
	return s.ingest(ctx, evt, ed, false)
}

// HandleDrop ingests the image payloads of a drop event. Unlike paste it
// pre-creates the attachment folder eagerly when not in relative mode.
func (s *Service) HandleDrop(ctx context.Context, evt *Event, ed vault.Editor) error {
	return s.ingest(ctx, evt, ed, true)
}

func (s *Service) ingest(ctx context.Context, evt *Event, ed vault.Editor, eagerFolder bool) error {
	var qualifying []Payload
	for _, p := range evt.Payloads {
		if !p.Kind.Image() {
			s.log.Debugf("skipping unsupported payload %q", p.Name)
			continue
		}
		qualifying = append(qualifying, p)
	}
	if len(qualifying) == 0 {
		return nil
	}
	if evt.SuppressDefault != nil {
		evt.SuppressDefault()
	}

	doc := evt.Document
	docFolder := doc.Folder()
	baseName := doc.BaseName()

	setting, err := s.folderSettingValue(docFolder, baseName)
	if err != nil {
		return err
	}
	if err := s.store.SetAttachmentFolder(ctx, setting); err != nil {
		return fmt.Errorf("update attachment folder setting: %w", err)
	}

	folder, err := s.AttachmentFolderPath(docFolder, baseName)
	if err != nil {
		return err
	}
	if eagerFolder && !s.Settings.RelativeMode() {
		if err := s.ensureFolder(ctx, folder); err != nil {
			return &IngestionFailedError{Document: doc.Path, Path: folder, Err: err}
		}
	}

	// Each payload gets its own timestamp, forced at least one millisecond
	// past the previous one: generated names carry millisecond resolution,
	// so same-kind payloads in a single event must not share a millisecond.
	var prev time.Time
	for _, p := range qualifying {
		now := time.Now()
		if now.Sub(prev) < time.Millisecond {
			now = prev.Add(time.Millisecond)
		}
		prev = now
		if err := s.ingestOne(ctx, doc, folder, p, now, ed); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) ingestOne(ctx context.Context, doc models.DocumentRef, folder string, p Payload, now time.Time, ed vault.Editor) error {
	if err := s.ensureFolder(ctx, folder); err != nil {
		return &IngestionFailedError{Document: doc.Path, Path: folder, Err: err}
	}

	base, err := template.Resolve(s.Settings.PastedFileNameTemplate, map[string]string{
		"filename":   doc.BaseName(),
		"foldername": FolderName(doc.Folder()),
		"date":       dateformat.Format(now, s.Settings.DateTimeFormat),
	})
	if err != nil {
		return err
	}
	name := base + "." + p.Kind.Extension()

	stored, err := s.store.SaveAttachment(ctx, doc.Folder(), name, p.Data)
	if err != nil {
		return &IngestionFailedError{Document: doc.Path, Path: path.Join(folder, name), Err: err}
	}

	link, err := s.files.GenerateMarkdownLink(ctx, stored, doc.Path)
	if err != nil {
		return &IngestionFailedError{Document: doc.Path, Path: stored, Err: err}
	}
	if err := ed.InsertAtCursor(ctx, link+"\n\n"); err != nil {
		return &IngestionFailedError{Document: doc.Path, Path: stored, Err: err}
	}

	s.log.Infof("attached %s to %s", stored, doc.Path)
	return nil
}

// ensureFolder creates the folder when absent. It never errors on an
// already existing folder and never partially creates.
func (s *Service) ensureFolder(ctx context.Context, folder string) error {
	exists, err := s.store.Exists(ctx, folder)
	if err != nil {
		return fmt.Errorf("check folder %s: %w", folder, err)
	}
	if exists {
		return nil
	}
	if err := s.store.MkdirAll(ctx, folder); err != nil {
		return fmt.Errorf("create folder %s: %w", folder, err)
	}
	return nil
}
