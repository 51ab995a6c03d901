package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver

	"music-scheduler/internal/logging"
	"music-scheduler/internal/metrics"
)

// Default timeout for database operations
const defaultTimeout = 5 * time.Second

// Database wraps the SQLite connection pool.
type Database struct {
	db     *sql.DB
	dbPath string
	mu     sync.RWMutex
}

// connection pragmas: WAL lets the health probe read while the playlist is
// being written, busy_timeout waits out a concurrent writer.
var pragmas = url.Values{
	"_journal_mode": {"WAL"},
	"_synchronous":  {"NORMAL"},
	"_busy_timeout": {"5000"},
}

// New opens (creating if needed) the database file at dbPath. The parent
// directory must already exist and be writable.
func New(ctx context.Context, dbPath string) (*Database, error) {
	logging.Info("Database path: %s", dbPath)
	if err := diagnoseDatabasePermissions(dbPath); err != nil {
		logging.Warn("Database permission diagnostics: %v", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?"+pragmas.Encode())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One writer at a time; a few readers for health and metrics.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	d := &Database{db: db, dbPath: dbPath}
	if err := d.Ping(ctx); err != nil {
		return nil, d.closeAfter(fmt.Errorf("connecting to database: %w", err))
	}
	if err := d.initialize(ctx); err != nil {
		return nil, d.closeAfter(fmt.Errorf("creating schema: %w", err))
	}
	return d, nil
}

// closeAfter closes the pool after a failed New and returns cause.
func (d *Database) closeAfter(cause error) error {
	if err := d.db.Close(); err != nil {
		logging.Error("closing database: %v", err)
	}
	return cause
}

func (d *Database) initialize(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() { recordQuery("initialize_schema", start, err) }()

	_, err = d.db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS metadata (
		key TEXT PRIMARY KEY,
		value TEXT
	);
	`)
	return err
}

// Path returns the database file path.
func (d *Database) Path() string {
	return d.dbPath
}

// Close closes the database connection.
func (d *Database) Close() error {
	return d.db.Close()
}

// Ping checks that the database is reachable.
func (d *Database) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return d.db.PingContext(ctx)
}

// recordQuery records database query metrics
func recordQuery(operation string, start time.Time, err error) {
	duration := time.Since(start).Seconds()
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.DBQueryTotal.WithLabelValues(operation, status).Inc()
	metrics.DBQueryDuration.WithLabelValues(operation).Observe(duration)
}

// UpdateDBMetrics updates database connection metrics
func (d *Database) UpdateDBMetrics() {
	stats := d.db.Stats()
	metrics.DBConnectionsOpen.Set(float64(stats.OpenConnections))
}

// diagnoseDatabasePermissions reports an unwritable directory and makes
// read-only database files (left behind by a restore, say) writable again.
func diagnoseDatabasePermissions(dbPath string) error {
	dir := filepath.Dir(dbPath)
	f, err := os.CreateTemp(dir, ".perm-check-*")
	if err != nil {
		return fmt.Errorf("database directory %s not writable: %w", dir, err)
	}
	_ = f.Close()
	_ = os.Remove(f.Name())

	for _, path := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
		info, err := os.Stat(path)
		if err != nil || info.Mode().Perm()&0o200 != 0 {
			continue
		}
		logging.Warn("%s is read-only (mode %v)", path, info.Mode())
		if err := os.Chmod(path, 0o600); err != nil {
			logging.Error("Failed to fix permissions on %s: %v", path, err)
		}
	}
	return nil
}
