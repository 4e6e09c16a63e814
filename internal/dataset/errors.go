package dataset

import "errors"

// ErrDatasetUnavailable is returned when the snapshot cannot be fetched,
// decoded or validated. There is no degraded mode behind it.
var ErrDatasetUnavailable = errors.New("dataset unavailable")
