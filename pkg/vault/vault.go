// Package vault defines the collaborator surfaces this system consumes
// from its host: storage, file management, embed metadata and editor
// insertion. The filesystem-backed implementation in this package serves
// the CLI; a host application supplies its own.
package vault

import (
	"context"
	"path"
	"strings"
)

// FileInfo describes an entry known to the vault by vault-relative path.
type FileInfo struct {
	Path     string
	IsFolder bool
}

// Listing holds a folder's direct children, split by kind. Entries are
// full vault-relative paths.
type Listing struct {
	Files   []string
	Folders []string
}

// Embed is one embedded link recorded for a document.
type Embed struct {
	Link string
}

// Adapter is the storage surface. The attachment-folder setting is a
// process-wide host value: SaveAttachment consults it rather than taking
// a folder argument, so handlers must write it immediately before saving
// and never cache it across handler invocations.
type Adapter interface {
	Exists(ctx context.Context, p string) (bool, error)
	MkdirAll(ctx context.Context, p string) error
	List(ctx context.Context, p string) (*Listing, error)

	// Lookup resolves a path to its entry, returning (nil, nil) when no
	// entry exists.
	Lookup(ctx context.Context, p string) (*FileInfo, error)

	AttachmentFolder(ctx context.Context) (string, error)
	SetAttachmentFolder(ctx context.Context, folder string) error

	// SaveAttachment persists data under the current attachment-folder
	// setting, resolving a "./" setting against docFolder. It returns the
	// vault-relative path of the stored file.
	SaveAttachment(ctx context.Context, docFolder, name string, data []byte) (string, error)
}

// FileManager renames entries and produces markdown links.
type FileManager interface {
	// RenameFile moves entry (a file, or a folder as a unit) to newPath.
	RenameFile(ctx context.Context, entry *FileInfo, newPath string) error

	// GenerateMarkdownLink returns an embed link to attachmentPath,
	// relative to the document at sourcePath.
	GenerateMarkdownLink(ctx context.Context, attachmentPath, sourcePath string) (string, error)
}

// MetadataCache exposes the host's parsed link metadata. GetEmbeds
// returns (nil, nil) for documents the cache knows nothing about.
type MetadataCache interface {
	GetEmbeds(ctx context.Context, documentPath string) ([]Embed, error)
}

// Editor inserts text at the current cursor or selection.
type Editor interface {
	InsertAtCursor(ctx context.Context, text string) error
}

// NormalizePath collapses redundant separators, resolves "." and ".."
// segments, and strips any leading or trailing separator. Leading ".."
// segments that would escape the vault root are dropped. The empty
// string denotes the vault root.
func NormalizePath(p string) string {
	p = path.Clean(strings.ReplaceAll(p, "\\", "/"))
	for strings.HasPrefix(p, "../") {
		p = p[3:]
	}
	if p == "." || p == ".." || p == "/" {
		return ""
	}
	return strings.Trim(p, "/")
}

// BaseName returns the last path element without its extension.
func BaseName(p string) string {
	base := path.Base(p)
	return base[:len(base)-len(path.Ext(base))]
}

// FolderOf returns the folder containing p, or "" for the vault root.
func FolderOf(p string) string {
	dir := path.Dir(p)
	if dir == "." || dir == "/" {
		return ""
	}
	return dir
}
