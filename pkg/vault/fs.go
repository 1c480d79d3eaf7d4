package vault

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// FS is a filesystem-backed vault rooted at a single directory. It
// implements Adapter and FileManager over an afero filesystem, which lets
// tests run against an in-memory vault.
type FS struct {
	afs              afero.Afero
	attachmentFolder string
	log              *logrus.Logger
}

// NewFS wraps base as a vault. Paths handed to the returned FS are
// vault-relative and slash-separated.
func NewFS(base afero.Fs, log *logrus.Logger) *FS {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &FS{afs: afero.Afero{Fs: base}, log: log}
}

// OpenOS opens the vault at root on the local filesystem.
func OpenOS(root string, log *logrus.Logger) *FS {
	return NewFS(afero.NewBasePathFs(afero.NewOsFs(), root), log)
}

// fsPath maps the empty vault-root path to something afero accepts.
func fsPath(p string) string {
	if p == "" {
		return "."
	}
	return p
}

func (f *FS) Exists(ctx context.Context, p string) (bool, error) {
	return f.afs.Exists(fsPath(p))
}

func (f *FS) MkdirAll(ctx context.Context, p string) error {
	return f.afs.MkdirAll(fsPath(p), 0755)
}

func (f *FS) List(ctx context.Context, p string) (*Listing, error) {
	entries, err := f.afs.ReadDir(fsPath(p))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", p, err)
	}
	listing := &Listing{}
	for _, entry := range entries {
		child := NormalizePath(path.Join(p, entry.Name()))
		if entry.IsDir() {
			listing.Folders = append(listing.Folders, child)
		} else {
			listing.Files = append(listing.Files, child)
		}
	}
	return listing, nil
}

func (f *FS) Lookup(ctx context.Context, p string) (*FileInfo, error) {
	info, err := f.afs.Stat(fsPath(p))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", p, err)
	}
	return &FileInfo{Path: p, IsFolder: info.IsDir()}, nil
}

func (f *FS) AttachmentFolder(ctx context.Context) (string, error) {
	return f.attachmentFolder, nil
}

func (f *FS) SetAttachmentFolder(ctx context.Context, folder string) error {
	f.attachmentFolder = folder
	return nil
}

func (f *FS) SaveAttachment(ctx context.Context, docFolder, name string, data []byte) (string, error) {
	folder := f.attachmentFolder
	if strings.HasPrefix(folder, "./") {
		folder = NormalizePath(path.Join(docFolder, folder))
	} else {
		folder = NormalizePath(folder)
	}
	if err := f.afs.MkdirAll(fsPath(folder), 0755); err != nil {
		return "", fmt.Errorf("create attachment folder %s: %w", folder, err)
	}
	p := NormalizePath(path.Join(folder, name))
	if err := f.afs.WriteFile(p, data, 0644); err != nil {
		return "", fmt.Errorf("write attachment %s: %w", p, err)
	}
	f.log.Debugf("stored attachment %s (%d bytes)", p, len(data))
	return p, nil
}

func (f *FS) RenameFile(ctx context.Context, entry *FileInfo, newPath string) error {
	newPath = NormalizePath(newPath)
	if parent := FolderOf(newPath); parent != "" {
		if err := f.afs.MkdirAll(parent, 0755); err != nil {
			return fmt.Errorf("create parent of %s: %w", newPath, err)
		}
	}
	if err := f.afs.Rename(entry.Path, newPath); err != nil {
		return fmt.Errorf("rename %s to %s: %w", entry.Path, newPath, err)
	}
	f.log.Debugf("renamed %s to %s", entry.Path, newPath)
	return nil
}

func (f *FS) GenerateMarkdownLink(ctx context.Context, attachmentPath, sourcePath string) (string, error) {
	rel := relativeTo(FolderOf(sourcePath), attachmentPath)
	return fmt.Sprintf("![](%s)", strings.ReplaceAll(rel, " ", "%20")), nil
}

// relativeTo computes target's path relative to folder, both
// vault-relative.
func relativeTo(folder, target string) string {
	if folder == "" {
		return target
	}
	fparts := strings.Split(folder, "/")
	tparts := strings.Split(target, "/")
	common := 0
	for common < len(fparts) && common < len(tparts) && fparts[common] == tparts[common] {
		common++
	}
	parts := make([]string, 0, len(fparts)-common+len(tparts)-common)
	for range fparts[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, tparts[common:]...)
	return strings.Join(parts, "/")
}

// ReadFile returns the contents of a vault file.
func (f *FS) ReadFile(ctx context.Context, p string) ([]byte, error) {
	return f.afs.ReadFile(p)
}

// WriteFile replaces the contents of a vault file.
func (f *FS) WriteFile(ctx context.Context, p string, data []byte) error {
	return f.afs.WriteFile(p, data, 0644)
}

// WalkDocuments visits every file under the vault root with the given
// extension (without dot), handing each one's path, mtime and content to
// fn. Hidden directories are skipped.
func (f *FS) WalkDocuments(ctx context.Context, ext string, fn func(p string, mtime time.Time, content []byte) error) error {
	suffix := "." + ext
	return afero.Walk(f.afs.Fs, ".", func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if info.IsDir() {
			if p != "." && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(p, suffix) {
			return nil
		}
		content, err := f.afs.ReadFile(p)
		if err != nil {
			return nil
		}
		return fn(NormalizePath(p), info.ModTime(), content)
	})
}

// Editor returns an Editor over the document at docPath. It stands in
// for a host editor by inserting at the end of the document.
func (f *FS) Editor(docPath string) Editor {
	return &appendEditor{fs: f, doc: docPath}
}

type appendEditor struct {
	fs  *FS
	doc string
}

func (e *appendEditor) InsertAtCursor(ctx context.Context, text string) error {
	content, err := e.fs.afs.ReadFile(e.doc)
	if err != nil {
		return fmt.Errorf("read document %s: %w", e.doc, err)
	}
	body := string(content)
	if body != "" && !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	body += text
	if err := e.fs.afs.WriteFile(e.doc, []byte(body), 0644); err != nil {
		return fmt.Errorf("write document %s: %w", e.doc, err)
	}
	return nil
}
