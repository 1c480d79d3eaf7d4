package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phatli/obsidian-custom-attachment-location/pkg/models"
)

func TestLoadDefaults(t *testing.T) {
	set, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), set)
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	root := t.TempDir()

	set := models.DefaultSettings()
	set.AttachmentFolderTemplate = "./assets/${filename}"
	set.AutoRenameFiles = true
	require.NoError(t, Save(root, set))

	loaded, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, set, loaded)
	assert.True(t, loaded.RelativeMode())
}

func TestLoadPartialFile(t *testing.T) {
	root := t.TempDir()
	partial := "pasted_file_name_template: ${filename}_${date}\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(partial), 0644))

	set, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "${filename}_${date}", set.PastedFileNameTemplate)
	// Everything unset falls back to defaults.
	assert.Equal(t, models.DefaultSettings().AttachmentFolderTemplate, set.AttachmentFolderTemplate)
	assert.True(t, set.AutoRenameFolder)
}

func TestLoadMalformedFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(":\nnot yaml ["), 0644))

	_, err := Load(root)
	assert.Error(t, err)
}
