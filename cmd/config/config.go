// Package config wires configuration, the vault and the embed index into
// a runtime the subcommands share.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/phatli/obsidian-custom-attachment-location/pkg/metadata"
	"github.com/phatli/obsidian-custom-attachment-location/pkg/models"
	"github.com/phatli/obsidian-custom-attachment-location/pkg/service"
	"github.com/phatli/obsidian-custom-attachment-location/pkg/settings"
	"github.com/phatli/obsidian-custom-attachment-location/pkg/vault"
)

// IndexFileName is the embed index kept at the vault root.
const IndexFileName = ".attachloc.db"

var (
	vaultPath string
	verbose   bool
)

// Runtime bundles everything a subcommand needs.
type Runtime struct {
	Root     string
	Settings *models.Settings
	Vault    *vault.FS
	Index    *metadata.Index
	Service  *service.Service
	Log      *logrus.Logger
}

// AddGlobalFlags registers the persistent flags shared by every command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&vaultPath, "vault", "V", "", "Vault root directory (defaults to the current directory)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Init builds the runtime for the vault selected by flags.
func Init() (*Runtime, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	root := vaultPath
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determine vault root: %w", err)
		}
		root = cwd
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("vault root not found: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault root is not a directory: %s", root)
	}

	set, err := settings.Load(root)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	fs := vault.OpenOS(root, log)

	index, err := metadata.NewIndex(filepath.Join(root, IndexFileName))
	if err != nil {
		return nil, fmt.Errorf("open embed index: %w", err)
	}

	return &Runtime{
		Root:     root,
		Settings: set,
		Vault:    fs,
		Index:    index,
		Service:  service.New(set, fs, fs, index, log),
		Log:      log,
	}, nil
}

// SaveSettings persists the runtime's settings back to the vault root.
func (r *Runtime) SaveSettings() error {
	return settings.Save(r.Root, r.Settings)
}

// Close releases the runtime's resources.
func (r *Runtime) Close() error {
	if r.Index != nil {
		return r.Index.Close()
	}
	return nil
}
