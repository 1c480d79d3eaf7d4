// Package service implements the attachment-location engine: path
// composition from templates, paste/drop ingestion, and the rename
// synchronizer that keeps attachment folders aligned with their owning
// document's name.
package service

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/phatli/obsidian-custom-attachment-location/pkg/models"
	"github.com/phatli/obsidian-custom-attachment-location/pkg/vault"
)

// DocumentExtension is the extension of managed documents, without dot.
const DocumentExtension = "md"

// Service is the core attachment-location service.
type Service struct {
	Settings *models.Settings

	store vault.Adapter
	files vault.FileManager
	meta  vault.MetadataCache
	log   *logrus.Logger
}

// New creates a new attachment-location service. A nil logger disables
// logging; a nil metadata cache behaves as an empty one, so file-rename
// sync finds no candidates.
func New(set *models.Settings, store vault.Adapter, files vault.FileManager, meta vault.MetadataCache, log *logrus.Logger) *Service {
	if set == nil {
		set = models.DefaultSettings()
	}
	if meta == nil {
		meta = emptyMetadataCache{}
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Service{
		Settings: set,
		store:    store,
		files:    files,
		meta:     meta,
		log:      log,
	}
}

// emptyMetadataCache knows no documents.
type emptyMetadataCache struct{}

func (emptyMetadataCache) GetEmbeds(ctx context.Context, documentPath string) ([]vault.Embed, error) {
	return nil, nil
}
