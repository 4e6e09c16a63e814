package entrypoint

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mrlokans/etymology/internal/config"
	"github.com/mrlokans/etymology/internal/dataset"
	"github.com/mrlokans/etymology/internal/logger"
)

// DatasetSource picks where the snapshot comes from: a local path first,
// then a URL, then the copy compiled into the binary.
func DatasetSource(cfg *config.Config, l *log.Logger) dataset.Source {
	switch {
	case cfg.Dataset.Path != "":
		return dataset.FileSource{Path: cfg.Dataset.Path}
	case cfg.Dataset.URL != "":
		return &dataset.HTTPSource{
			URL:      cfg.Dataset.URL,
			CacheDir: cfg.Dataset.CacheDir,
			Timeout:  cfg.Dataset.FetchTimeout,
			MaxBytes: cfg.Dataset.MaxBytes,
			Logger:   l,
		}
	default:
		return dataset.EmbeddedSource{}
	}
}

// OpenDataset opens the configured snapshot. Errors match
// dataset.ErrDatasetUnavailable.
func OpenDataset(ctx context.Context, cfg *config.Config) (*dataset.Store, error) {
	l := logger.New("dataset")
	src := DatasetSource(cfg, l)

	start := time.Now()
	store, err := dataset.Open(ctx, src, dataset.Options{
		MaxConns: cfg.Dataset.MaxConns,
		Logger:   logger.Gorm(logger.New("gorm"), logger.ParseGormLevel(cfg.Logging.DatabaseLevel)),
	})
	if err != nil {
		return nil, err
	}
	l.Info("dataset opened", "source", store.Source(), "bytes", store.Size(), "took", time.Since(start).Round(time.Millisecond))
	return store, nil
}
