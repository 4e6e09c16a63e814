package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// DefaultFetchTimeout bounds a remote snapshot download.
	DefaultFetchTimeout = 2 * time.Minute
	// DefaultMaxBytes caps the size of a remote snapshot.
	DefaultMaxBytes int64 = 512 << 20

	userAgent = "Etymology/1.0"
)

// Source provides the raw bytes of a dataset snapshot.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]byte, error)
}

// FileSource reads a snapshot from local disk.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string {
	return "file:" + s.Path
}

func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return data, nil
}

// HTTPSource downloads a snapshot and keeps a copy in CacheDir so later
// starts skip the network. Only bodies that pass the snapshot header check
// are cached; a cached file that fails it is removed and fetched again. An
// empty CacheDir disables caching.
type HTTPSource struct {
	URL      string
	CacheDir string
	Timeout  time.Duration
	MaxBytes int64
	Client   *http.Client
	Logger   *log.Logger
}

func (s *HTTPSource) Name() string {
	return s.URL
}

// CachePath is where the downloaded snapshot is stored.
func (s *HTTPSource) CachePath() string {
	if s.CacheDir == "" {
		return ""
	}
	return filepath.Join(s.CacheDir, SnapshotFileName)
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	if path := s.CachePath(); path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil && validSnapshot(data):
			s.logf("using cached snapshot %s", path)
			return data, nil
		case err == nil:
			s.logf("discarding invalid cached snapshot %s", path)
			if err := os.Remove(path); err != nil {
				return nil, fmt.Errorf("remove invalid cached snapshot: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("read cached snapshot: %w", err)
		}
	}

	data, err := s.download(ctx)
	if err != nil {
		return nil, err
	}

	if path := s.CachePath(); path != "" {
		if err := writeAtomic(path, data); err != nil {
			// The download is still usable; the next start fetches again.
			s.logf("could not cache snapshot at %s: %v", path, err)
		}
	}
	return data, nil
}

func (s *HTTPSource) download(ctx context.Context) ([]byte, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	maxBytes := s.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	s.logf("downloading snapshot from %s", s.URL)
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch snapshot: unexpected status %d", resp.StatusCode)
	}
	if resp.ContentLength > maxBytes {
		return nil, fmt.Errorf("snapshot size %d exceeds limit of %d bytes", resp.ContentLength, maxBytes)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read snapshot body: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("snapshot exceeds limit of %d bytes", maxBytes)
	}
	if !validSnapshot(data) {
		return nil, fmt.Errorf("downloaded body is not a SQLite database")
	}
	return data, nil
}

func (s *HTTPSource) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Infof(format, args...)
	}
}

// writeAtomic writes data next to path and renames it into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, "snapshot_tmp_")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	defer func() {
		tmpFile.Close()
		os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
