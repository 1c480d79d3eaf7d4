package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phatli/obsidian-custom-attachment-location/pkg/models"
	"github.com/phatli/obsidian-custom-attachment-location/pkg/template"
)

func composerService(set *models.Settings) *Service {
	return New(set, nil, nil, nil, nil)
}

func TestFolderName(t *testing.T) {
	assert.Equal(t, "proj_sub", FolderName("proj/sub"))
	assert.Equal(t, "notes", FolderName("notes"))
	assert.Equal(t, "", FolderName(""))
}

func TestAttachmentFolderPath(t *testing.T) {
	svc := composerService(models.DefaultSettings())

	folder, err := svc.AttachmentFolderPath("proj/sub", "Idea")
	require.NoError(t, err)
	assert.Equal(t, "media/proj_sub/Idea", folder)
}

func TestAttachmentFolderPathRelativeMode(t *testing.T) {
	set := models.DefaultSettings()
	set.AttachmentFolderTemplate = "./assets/${filename}"
	svc := composerService(set)

	folder, err := svc.AttachmentFolderPath("notes", "X")
	require.NoError(t, err)
	assert.Equal(t, "notes/assets/X", folder)
}

func TestAttachmentFolderPathVaultRootDocument(t *testing.T) {
	svc := composerService(models.DefaultSettings())

	// An empty foldername collapses the doubled separator away.
	folder, err := svc.AttachmentFolderPath("", "Idea")
	require.NoError(t, err)
	assert.Equal(t, "media/Idea", folder)
}

func TestAttachmentFolderPathNeverHasBoundarySeparators(t *testing.T) {
	set := models.DefaultSettings()
	set.AttachmentFolderTemplate = "/media/${filename}/"
	svc := composerService(set)

	folder, err := svc.AttachmentFolderPath("notes", "Idea")
	require.NoError(t, err)
	assert.Equal(t, "media/Idea", folder)
}

func TestAttachmentFolderPathUnboundPlaceholder(t *testing.T) {
	set := models.DefaultSettings()
	set.AttachmentFolderTemplate = "media/${typo}"
	svc := composerService(set)

	_, err := svc.AttachmentFolderPath("notes", "Idea")
	var unbound *template.UnboundPlaceholderError
	require.True(t, errors.As(err, &unbound))
	assert.Equal(t, "typo", unbound.Name)
}

func TestAttachmentFolderPathPure(t *testing.T) {
	svc := composerService(models.DefaultSettings())
	first, err := svc.AttachmentFolderPath("notes", "Idea")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := svc.AttachmentFolderPath("notes", "Idea")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
