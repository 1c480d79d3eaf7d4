package service

import (
	"path"
	"strings"

	"github.com/phatli/obsidian-custom-attachment-location/pkg/models"
	"github.com/phatli/obsidian-custom-attachment-location/pkg/template"
	"github.com/phatli/obsidian-custom-attachment-location/pkg/vault"
)

// FolderName flattens a document folder path into a single template
// token: every separator becomes "_", so "proj/sub" yields "proj_sub".
// The vault root yields "".
func FolderName(docFolder string) string {
	return strings.ReplaceAll(vault.NormalizePath(docFolder), "/", "_")
}

// AttachmentFolderPath derives the attachment folder for a document from
// its folder and base name. In relative mode the template result is
// joined onto the document's folder; otherwise it is a vault-root-relative
// path. The result never begins or ends with a separator. Pure: ingestion
// and rename synchronization both call this so they always agree on the
// folder for a given document.
func (s *Service) AttachmentFolderPath(docFolder, docBaseName string) (string, error) {
	raw, err := s.resolveFolderTemplate(docFolder, docBaseName)
	if err != nil {
		return "", err
	}
	if s.Settings.RelativeMode() {
		return vault.NormalizePath(path.Join(docFolder, strings.TrimPrefix(raw, models.RelativeMarker))), nil
	}
	return vault.NormalizePath(raw), nil
}

// folderSettingValue is the string written to the host's global
// attachment-folder setting: the raw resolved template with its "./"
// prefix kept in relative mode, the normalized vault-root-relative path
// otherwise.
func (s *Service) folderSettingValue(docFolder, docBaseName string) (string, error) {
	raw, err := s.resolveFolderTemplate(docFolder, docBaseName)
	if err != nil {
		return "", err
	}
	if s.Settings.RelativeMode() {
		return models.RelativeMarker + vault.NormalizePath(strings.TrimPrefix(raw, models.RelativeMarker)), nil
	}
	return vault.NormalizePath(raw), nil
}

func (s *Service) resolveFolderTemplate(docFolder, docBaseName string) (string, error) {
	return template.Resolve(s.Settings.AttachmentFolderTemplate, map[string]string{
		"filename":   docBaseName,
		"foldername": FolderName(docFolder),
	})
}
