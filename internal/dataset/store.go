// Package dataset loads the dictionary snapshot and exposes it as a
// read-only relational store.
//
// # Lifecycle
//
// A Store is opened once at process start and shared by every caller:
//
//	store, err := dataset.Open(ctx, dataset.EmbeddedSource{}, dataset.Options{})
//	if errors.Is(err, dataset.ErrDatasetUnavailable) { ... }
//	defer store.Close()
//
//	rows, err := store.QueryRows(`SELECT * FROM words WHERE id = ?`, 1)
//
// Every pooled connection holds its own in-memory copy of the snapshot, so
// concurrent reads need no coordination. Connections are query_only; the
// snapshot never changes after Open.
package dataset

import (
	"bytes"
	"context"
	"encoding/binary"
	"database/sql"
	"database/sql/driver"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	// DefaultMaxConns is the number of in-memory copies kept open.
	DefaultMaxConns = 4

	memoryDSN       = ":memory:"
	sqliteHeaderLen = 100
)

var sqliteMagic = []byte("SQLite format 3\x00")

// Row is one result row keyed by column name.
type Row = map[string]any

// Options tune how the snapshot is opened.
type Options struct {
	MaxConns int
	Logger   logger.Interface
}

// Store is the shared handle over an opened snapshot.
type Store struct {
	db     *gorm.DB
	sqlDB  *sql.DB
	source string
	size   int
}

// Open fetches the snapshot from src and opens it in memory.
func Open(ctx context.Context, src Source, opts Options) (*Store, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: no snapshot source configured", ErrDatasetUnavailable)
	}
	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDatasetUnavailable, src.Name(), err)
	}
	return OpenBytes(data, src.Name(), opts)
}

// OpenBytes opens an already fetched snapshot. name is used for reporting.
func OpenBytes(data []byte, name string, opts Options) (*Store, error) {
	if !validSnapshot(data) {
		return nil, fmt.Errorf("%w: %s is not a SQLite database", ErrDatasetUnavailable, name)
	}

	maxConns := opts.MaxConns
	if maxConns <= 0 {
		maxConns = DefaultMaxConns
	}
	gormLogger := opts.Logger
	if gormLogger == nil {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	sqlDB := sql.OpenDB(newSnapshotConnector(prepareSnapshot(data)))
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(maxConns)
	// Each connection is a full copy of the snapshot; keep them.
	sqlDB.SetConnMaxLifetime(0)

	db, err := gorm.Open(sqlite.New(sqlite.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 gormLogger,
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: %s: open: %w", ErrDatasetUnavailable, name, err)
	}

	store := &Store{db: db, sqlDB: sqlDB, source: name, size: len(data)}
	if err := store.validate(); err != nil {
		store.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrDatasetUnavailable, name, err)
	}
	return store, nil
}

// QueryRows runs a parameterised read and returns every row. A nil Store
// is an uninitialised handle and yields no rows.
func (s *Store) QueryRows(query string, args ...any) ([]Row, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	rows, err := s.db.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []Row
	for rows.Next() {
		values := make([]any, len(columns))
		targets := make([]any, len(columns))
		for i := range values {
			targets[i] = &values[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, err
		}
		row := make(Row, len(columns))
		for i, column := range columns {
			row[column] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Ping checks that a connection can be obtained.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("%w: store not initialised", ErrDatasetUnavailable)
	}
	return s.sqlDB.PingContext(ctx)
}

// Source names where the snapshot came from.
func (s *Store) Source() string {
	if s == nil {
		return ""
	}
	return s.source
}

// Size is the snapshot size in bytes.
func (s *Store) Size() int {
	if s == nil {
		return 0
	}
	return s.size
}

// Close releases every in-memory copy.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) validate() error {
	rows, err := s.QueryRows(`SELECT name FROM sqlite_master WHERE type = 'table'`)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	present := make(map[string]bool, len(rows))
	for _, row := range rows {
		if name, ok := row["name"].(string); ok {
			present[name] = true
		}
	}
	for _, table := range RequiredTables {
		if !present[table] {
			return fmt.Errorf("missing table %q", table)
		}
	}
	return nil
}

// validSnapshot reports whether data carries a SQLite header and, when the
// header records the database size, is at least that long.
func validSnapshot(data []byte) bool {
	if len(data) < sqliteHeaderLen || !bytes.HasPrefix(data, sqliteMagic) {
		return false
	}
	pageSize := int64(binary.BigEndian.Uint16(data[16:18]))
	if pageSize == 1 {
		pageSize = 65536
	}
	pages := int64(binary.BigEndian.Uint32(data[28:32]))
	changeCounter := binary.BigEndian.Uint32(data[24:28])
	validFor := binary.BigEndian.Uint32(data[92:96])
	if pages == 0 || changeCounter != validFor {
		return true
	}
	return int64(len(data)) >= pageSize*pages
}

// prepareSnapshot returns data ready for sqlite3_deserialize. In-memory
// databases cannot run in WAL mode, so a WAL header is rewritten to the
// rollback journal format on a copy.
func prepareSnapshot(data []byte) []byte {
	if data[18] == 1 && data[19] == 1 {
		return data
	}
	patched := make([]byte, len(data))
	copy(patched, data)
	patched[18], patched[19] = 1, 1
	return patched
}

// snapshotConnector opens private in-memory databases and loads the
// snapshot into each one as it is created.
type snapshotConnector struct {
	driver *sqlite3.SQLiteDriver
}

func newSnapshotConnector(snapshot []byte) *snapshotConnector {
	return &snapshotConnector{
		driver: &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				if err := conn.Deserialize(snapshot, "main"); err != nil {
					return fmt.Errorf("deserialize snapshot: %w", err)
				}
				if _, err := conn.Exec("PRAGMA query_only = ON", nil); err != nil {
					return fmt.Errorf("set query_only: %w", err)
				}
				return nil
			},
		},
	}
}

func (c *snapshotConnector) Connect(context.Context) (driver.Conn, error) {
	return c.driver.Open(memoryDSN)
}

func (c *snapshotConnector) Driver() driver.Driver {
	return c.driver
}
