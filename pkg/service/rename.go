package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/phatli/obsidian-custom-attachment-location/pkg/vault"
)

// HandleRename synchronizes attachment locations after a document was
// renamed from oldPath to newFile. It is a no-op unless folder
// auto-rename is enabled and the renamed entry is a managed document.
//
// Both the old and new attachment folders are computed against the
// document's current folder, varying only the base name, so a move and
// rename arriving as a single event resolve in one recompute.
func (s *Service) HandleRename(ctx context.Context, oldPath string, newFile vault.FileInfo) error {
	if !s.Settings.AutoRenameFolder {
		return nil
	}
	if newFile.IsFolder || strings.TrimPrefix(path.Ext(newFile.Path), ".") != DocumentExtension {
		return nil
	}

	oldBase := vault.BaseName(oldPath)
	newBase := vault.BaseName(newFile.Path)
	docFolder := vault.FolderOf(newFile.Path)

	oldFolder, err := s.AttachmentFolderPath(docFolder, oldBase)
	if err != nil {
		return err
	}
	newFolder, err := s.AttachmentFolderPath(docFolder, newBase)
	if err != nil {
		return err
	}

	if oldFolder != newFolder {
		entry, err := s.store.Lookup(ctx, oldFolder)
		if err != nil {
			return fmt.Errorf("lookup attachment folder %s: %w", oldFolder, err)
		}
		if entry == nil {
			// Absent folder: nothing to synchronize, and file renames
			// are skipped too.
			s.log.Debugf("attachment folder %s absent, skipping sync for %s", oldFolder, newFile.Path)
			return nil
		}
		if err := s.files.RenameFile(ctx, entry, newFolder); err != nil {
			return fmt.Errorf("relocate attachment folder %s to %s: %w", oldFolder, newFolder, err)
		}
		s.log.Infof("relocated attachment folder %s to %s", oldFolder, newFolder)

		setting, err := s.folderSettingValue(docFolder, newBase)
		if err != nil {
			return err
		}
		if err := s.store.SetAttachmentFolder(ctx, setting); err != nil {
			return fmt.Errorf("update attachment folder setting: %w", err)
		}
	}

	if !s.Settings.AutoRenameFiles {
		return nil
	}

	// The folder may be absent even when no relocation ran, e.g. a
	// name-independent template. Absent folders are a silent no-op here
	// too, never a listing error.
	entry, err := s.store.Lookup(ctx, newFolder)
	if err != nil {
		return fmt.Errorf("lookup attachment folder %s: %w", newFolder, err)
	}
	if entry == nil {
		s.log.Debugf("attachment folder %s absent, skipping file sync for %s", newFolder, newFile.Path)
		return nil
	}
	return s.syncAttachmentFiles(ctx, newFile.Path, newFolder, oldBase, newBase)
}

// syncAttachmentFiles renames attachment files in folder whose names
// embed oldBase. Candidates are limited to files the document embeds with
// a .png or jpeg link. Matching is substring containment of oldBase, a
// known heuristic: a name that merely happens to contain the old base
// name is renamed too.
func (s *Service) syncAttachmentFiles(ctx context.Context, docPath, folder, oldBase, newBase string) error {
	embeds, err := s.meta.GetEmbeds(ctx, docPath)
	if err != nil {
		return fmt.Errorf("get embeds for %s: %w", docPath, err)
	}
	candidates := make(map[string]bool)
	for _, e := range embeds {
		if strings.HasSuffix(e.Link, ".png") || strings.HasSuffix(e.Link, "jpeg") {
			candidates[vault.BaseName(e.Link)] = true
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	listing, err := s.store.List(ctx, folder)
	if err != nil {
		return fmt.Errorf("list attachment folder %s: %w", folder, err)
	}

	var errs []error
	for _, file := range listing.Files {
		base := vault.BaseName(file)
		if !candidates[base] || !strings.Contains(base, oldBase) {
			continue
		}
		newName := strings.Replace(base, oldBase, newBase, 1) + path.Ext(file)
		newPath := path.Join(folder, newName)
		if newPath == file {
			continue
		}
		if err := s.files.RenameFile(ctx, &vault.FileInfo{Path: file}, newPath); err != nil {
			errs = append(errs, &RenameSyncError{OldPath: file, NewPath: newPath, Err: err})
			s.log.Warnf("failed to rename attachment %s: %v", file, err)
			continue
		}
		s.log.Infof("renamed attachment %s to %s", file, newPath)
	}
	return errors.Join(errs...)
}
