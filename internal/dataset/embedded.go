package dataset

import (
	"context"
	_ "embed"
)

//go:embed assets/english_etymology.db
var embeddedSnapshot []byte

// EmbeddedSource serves the snapshot compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string {
	return "embedded:" + SnapshotFileName
}

func (EmbeddedSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return embeddedSnapshot, nil
}

// HasEmbeddedSnapshot reports whether a non-empty snapshot was bundled.
func HasEmbeddedSnapshot() bool {
	return len(embeddedSnapshot) > 0
}
