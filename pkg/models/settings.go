package models

import "strings"

// RelativeMarker prefixes a folder template that should be resolved
// relative to the owning document's folder instead of the vault root.
const RelativeMarker = "./"

// Settings holds the persisted attachment-location configuration.
// It is loaded once at startup and mutated only through explicit update
// operations; callers persist it after each mutation.
type Settings struct {
	// AttachmentFolderTemplate governs where attachments are stored.
	// A "./" prefix selects relative mode.
	AttachmentFolderTemplate string `yaml:"attachment_folder_template" mapstructure:"attachment_folder_template"`

	// PastedFileNameTemplate governs the generated attachment base name.
	PastedFileNameTemplate string `yaml:"pasted_file_name_template" mapstructure:"pasted_file_name_template"`

	// DateTimeFormat is the format string for the date placeholder,
	// in YYYYMMDDHHmmssSSS-style tokens.
	DateTimeFormat string `yaml:"date_time_format" mapstructure:"date_time_format"`

	// AutoRenameFolder relocates the attachment folder when its owning
	// document is renamed.
	AutoRenameFolder bool `yaml:"auto_rename_folder" mapstructure:"auto_rename_folder"`

	// AutoRenameFiles additionally renames attachment files whose names
	// embed the document's old base name.
	AutoRenameFiles bool `yaml:"auto_rename_files" mapstructure:"auto_rename_files"`
}

// DefaultSettings returns the settings used when nothing is persisted yet.
func DefaultSettings() *Settings {
	return &Settings{
		AttachmentFolderTemplate: "media/${foldername}/${filename}",
		PastedFileNameTemplate:   "${filename}-${date}",
		DateTimeFormat:           "YYYYMMDDHHmmssSSS",
		AutoRenameFolder:         true,
		AutoRenameFiles:          false,
	}
}

// RelativeMode reports whether the folder template is resolved relative to
// the document's folder. Recomputed from the template on every call so it
// can never go stale after a template change.
func (s *Settings) RelativeMode() bool {
	return strings.HasPrefix(s.AttachmentFolderTemplate, RelativeMarker)
}
