package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stephenafamo/bob"
	_ "modernc.org/sqlite"

	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/storage/expenses"
)

// Storage owns the database handle and hands out readers and transactional writers.
type Storage struct {
	db      *sql.DB
	exec    bob.DB
	dialect expenses.Dialect
}

// Connection is the database/sql driver name and DSN for a configured store.
type Connection struct {
	Driver string
	DSN    string
}

// ConnectionFor resolves the configured driver to a Connection.
func ConnectionFor(cfg *config.Config) (Connection, error) {
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		return Connection{Driver: config.DriverSQLite, DSN: cfg.SQLite.DSN()}, nil
	case config.DriverPostgres:
		return Connection{Driver: config.DriverPostgres, DSN: cfg.Postgres.DSN()}, nil
	default:
		return Connection{}, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func (c Connection) dialect() expenses.Dialect {
	if c.Driver == config.DriverPostgres {
		return expenses.Postgres
	}
	return expenses.SQLite
}

// Open connects to the configured store and, when enabled, brings its schema up to date.
func Open(ctx context.Context, cfg *config.Config) (*Storage, error) {
	conn, err := ConnectionFor(cfg)
	if err != nil {
		return nil, err
	}

	if conn.Driver == config.DriverSQLite {
		if err := EnsureDir(cfg.SQLite.Path); err != nil {
			return nil, err
		}
	}

	if cfg.Store.AutoMigrate {
		status, err := Migrate(conn)
		if err != nil {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{
			"driver":               conn.Driver,
			"preMigrationVersion":  status.PreVersion,
			"postMigrationVersion": status.PostVersion,
		}).Info("Migration status")
	}

	return OpenConnection(ctx, conn)
}

// EnsureDir creates the directory holding a SQLite database file.
func EnsureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}
	return nil
}

// OpenConnection connects without running migrations.
func OpenConnection(ctx context.Context, conn Connection) (*Storage, error) {
	db, err := sql.Open(conn.Driver, conn.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", conn.Driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database: %w", conn.Driver, err)
	}

	return &Storage{
		db:      db,
		exec:    bob.NewDB(db),
		dialect: conn.dialect(),
	}, nil
}

// Read returns a Reader outside any transaction.
func (s *Storage) Read() *Reader {
	return NewReader(s.exec, s.dialect)
}

// Write begins a transaction. The caller must Commit or Rollback the Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.exec.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx, s.dialect), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.db.Close()
}
