// Package settings loads and persists the attachment-location
// configuration for a vault.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/phatli/obsidian-custom-attachment-location/pkg/models"
)

// FileName is the settings file kept at the vault root.
const FileName = ".attachloc.yaml"

// Load reads the settings file from the vault root, applying defaults for
// anything unset. Environment variables prefixed ATTACHLOC_ override file
// values. A missing file yields the defaults.
func Load(vaultRoot string) (*models.Settings, error) {
	v := viper.New()
	defaults := models.DefaultSettings()
	v.SetDefault("attachment_folder_template", defaults.AttachmentFolderTemplate)
	v.SetDefault("pasted_file_name_template", defaults.PastedFileNameTemplate)
	v.SetDefault("date_time_format", defaults.DateTimeFormat)
	v.SetDefault("auto_rename_folder", defaults.AutoRenameFolder)
	v.SetDefault("auto_rename_files", defaults.AutoRenameFiles)

	v.SetConfigFile(filepath.Join(vaultRoot, FileName))
	v.SetConfigType("yaml")
	v.SetEnvPrefix("ATTACHLOC")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read settings: %w", err)
			}
		}
	}

	var set models.Settings
	if err := v.Unmarshal(&set); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	return &set, nil
}

// Save persists the settings to the vault root. Callers invoke it after
// every mutation.
func Save(vaultRoot string, set *models.Settings) error {
	data, err := yaml.Marshal(set)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(filepath.Join(vaultRoot, FileName), data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
