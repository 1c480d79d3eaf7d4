package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentRef(t *testing.T) {
	doc := DocumentRef{Path: "proj/sub/Idea.md"}
	assert.Equal(t, "proj/sub", doc.Folder())
	assert.Equal(t, "Idea", doc.BaseName())
	assert.Equal(t, "md", doc.Extension())
}

func TestDocumentRefAtVaultRoot(t *testing.T) {
	doc := DocumentRef{Path: "Idea.md"}
	assert.Equal(t, "", doc.Folder())
	assert.Equal(t, "Idea", doc.BaseName())
}

func TestDocumentRefWithoutExtension(t *testing.T) {
	doc := DocumentRef{Path: "notes/Idea"}
	assert.Equal(t, "Idea", doc.BaseName())
	assert.Equal(t, "", doc.Extension())
}

func TestKindFromMIME(t *testing.T) {
	kind, ok := KindFromMIME("image/png")
	assert.True(t, ok)
	assert.Equal(t, KindPNG, kind)
	assert.Equal(t, "png", kind.Extension())

	kind, ok = KindFromMIME("image/jpeg")
	assert.True(t, ok)
	assert.Equal(t, KindJPEG, kind)

	_, ok = KindFromMIME("image/gif")
	assert.False(t, ok)

	_, ok = KindFromMIME("text/plain")
	assert.False(t, ok)
}

func TestSettingsRelativeMode(t *testing.T) {
	set := DefaultSettings()
	assert.False(t, set.RelativeMode())

	set.AttachmentFolderTemplate = "./assets/${filename}"
	assert.True(t, set.RelativeMode())

	set.AttachmentFolderTemplate = "media/${filename}"
	assert.False(t, set.RelativeMode())
}

func TestDefaultSettings(t *testing.T) {
	set := DefaultSettings()
	assert.Equal(t, "media/${foldername}/${filename}", set.AttachmentFolderTemplate)
	assert.Equal(t, "${filename}-${date}", set.PastedFileNameTemplate)
	assert.Equal(t, "YYYYMMDDHHmmssSSS", set.DateTimeFormat)
	assert.True(t, set.AutoRenameFolder)
	assert.False(t, set.AutoRenameFiles)
}
