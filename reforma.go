// Package reforma wires the Reforma project state manager together for
// embedding applications: a JSON-file document store, a local attachment
// store and the manager on top of them.
package reforma

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stonefisk/reforma/pkg/config"
	"github.com/stonefisk/reforma/pkg/filestore"
	"github.com/stonefisk/reforma/pkg/project"
	"github.com/stonefisk/reforma/pkg/storage"
)

// Open builds a project manager from the configuration. The document is
// loaded (or seeded) immediately; callers should Close the manager to
// flush pending state.
func Open(cfg config.Config, options ...project.Option) (*project.Manager, error) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err == nil && level != zerolog.NoLevel {
		zerolog.SetGlobalLevel(level)
	}

	store, err := storage.NewFile(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	files, err := filestore.NewLocal(
		cfg.Uploads.Dir,
		cfg.Uploads.URLPrefix,
		filestore.WithMaxSize(cfg.Uploads.MaxSize),
		filestore.WithAllowedTypes(cfg.Uploads.AllowedTypes),
	)
	if err != nil {
		return nil, err
	}

	options = append([]project.Option{
		project.WithSaveDelay(cfg.Storage.SaveDelay),
		project.WithLogger(log.Logger),
	}, options...)

	return project.New(store, files, options...), nil
}
