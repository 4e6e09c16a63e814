package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/etymology/internal/config"
	"github.com/mrlokans/etymology/internal/database/lexicon"
	"github.com/mrlokans/etymology/internal/dataset"
	"github.com/mrlokans/etymology/internal/entrypoint"
)

// datasetFlags are shared by every command that reads the snapshot.
type datasetFlags struct {
	Config      *config.Config
	DatasetPath string
	JSON        bool
	Out         io.Writer
}

func (d *datasetFlags) config() *config.Config {
	cfg := d.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if d.DatasetPath != "" {
		copied := *cfg
		copied.Dataset.Path = d.DatasetPath
		cfg = &copied
	}
	return cfg
}

func (d *datasetFlags) out() io.Writer {
	if d.Out == nil {
		return os.Stdout
	}
	return d.Out
}

func (d *datasetFlags) open(ctx context.Context) (*dataset.Store, *lexicon.Repository, error) {
	store, err := entrypoint.OpenDataset(ctx, d.config())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	return store, lexicon.NewRepository(store), nil
}

func (d *datasetFlags) writeJSON(v any) error {
	enc := json.NewEncoder(d.out())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
