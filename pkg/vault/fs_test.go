package vault

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemVault(t *testing.T) *FS {
	t.Helper()
	return NewFS(afero.NewMemMapFs(), nil)
}

func TestFSExistsAndMkdirAll(t *testing.T) {
	ctx := context.Background()
	fs := newMemVault(t)

	exists, err := fs.Exists(ctx, "media/notes")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, fs.MkdirAll(ctx, "media/notes"))
	require.NoError(t, fs.MkdirAll(ctx, "media/notes")) // idempotent

	exists, err = fs.Exists(ctx, "media/notes")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFSList(t *testing.T) {
	ctx := context.Background()
	fs := newMemVault(t)
	require.NoError(t, fs.MkdirAll(ctx, "media/sub"))
	require.NoError(t, fs.WriteFile(ctx, "media/a.png", []byte("a")))
	require.NoError(t, fs.WriteFile(ctx, "media/b.png", []byte("b")))

	listing, err := fs.List(ctx, "media")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"media/a.png", "media/b.png"}, listing.Files)
	assert.ElementsMatch(t, []string{"media/sub"}, listing.Folders)
}

func TestFSLookup(t *testing.T) {
	ctx := context.Background()
	fs := newMemVault(t)
	require.NoError(t, fs.MkdirAll(ctx, "media"))
	require.NoError(t, fs.WriteFile(ctx, "media/a.png", []byte("a")))

	entry, err := fs.Lookup(ctx, "media")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.True(t, entry.IsFolder)

	entry, err = fs.Lookup(ctx, "media/a.png")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.False(t, entry.IsFolder)

	entry, err = fs.Lookup(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestFSSaveAttachmentAbsoluteSetting(t *testing.T) {
	ctx := context.Background()
	fs := newMemVault(t)
	require.NoError(t, fs.SetAttachmentFolder(ctx, "media/notes/Idea"))

	stored, err := fs.SaveAttachment(ctx, "notes", "Idea-1.png", []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, "media/notes/Idea/Idea-1.png", stored)

	data, err := fs.ReadFile(ctx, stored)
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), data)
}

func TestFSSaveAttachmentRelativeSetting(t *testing.T) {
	ctx := context.Background()
	fs := newMemVault(t)
	require.NoError(t, fs.SetAttachmentFolder(ctx, "./assets/Idea"))

	stored, err := fs.SaveAttachment(ctx, "notes", "Idea-1.png", []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, "notes/assets/Idea/Idea-1.png", stored)
}

func TestFSGenerateMarkdownLink(t *testing.T) {
	ctx := context.Background()
	fs := newMemVault(t)

	link, err := fs.GenerateMarkdownLink(ctx, "media/notes/Idea/Idea-1.png", "notes/Idea.md")
	require.NoError(t, err)
	assert.Equal(t, "![](../media/notes/Idea/Idea-1.png)", link)

	link, err = fs.GenerateMarkdownLink(ctx, "notes/assets/a b.png", "notes/Idea.md")
	require.NoError(t, err)
	assert.Equal(t, "![](assets/a%20b.png)", link)
}

func TestFSRenameFolder(t *testing.T) {
	// Directory renames go through the real filesystem; MemMapFs rename
	// semantics for folders differ from the OS.
	ctx := context.Background()
	fs := OpenOS(t.TempDir(), nil)
	require.NoError(t, fs.MkdirAll(ctx, "media/Idea"))
	require.NoError(t, fs.WriteFile(ctx, "media/Idea/a.png", []byte("a")))

	require.NoError(t, fs.RenameFile(ctx, &FileInfo{Path: "media/Idea", IsFolder: true}, "media/Notion"))

	exists, err := fs.Exists(ctx, "media/Notion/a.png")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.Exists(ctx, "media/Idea")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFSEditorAppends(t *testing.T) {
	ctx := context.Background()
	fs := newMemVault(t)
	require.NoError(t, fs.WriteFile(ctx, "notes/Idea.md", []byte("# Idea")))

	ed := fs.Editor("notes/Idea.md")
	require.NoError(t, ed.InsertAtCursor(ctx, "![](a.png)\n\n"))

	content, err := fs.ReadFile(ctx, "notes/Idea.md")
	require.NoError(t, err)
	assert.Equal(t, "# Idea\n![](a.png)\n\n", string(content))
}

func TestFSWalkDocuments(t *testing.T) {
	ctx := context.Background()
	fs := newMemVault(t)
	require.NoError(t, fs.WriteFile(ctx, "notes/Idea.md", []byte("# Idea")))
	require.NoError(t, fs.WriteFile(ctx, "Top.md", []byte("# Top")))
	require.NoError(t, fs.WriteFile(ctx, "media/a.png", []byte("a")))
	require.NoError(t, fs.WriteFile(ctx, ".obsidian/workspace.md", []byte("hidden")))

	var seen []string
	err := fs.WalkDocuments(ctx, "md", func(p string, mtime time.Time, content []byte) error {
		seen = append(seen, p)
		return nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"notes/Idea.md", "Top.md"}, seen)
}
