package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fjacquet/expense-categorizer/internal/logging"
	"fjacquet/expense-categorizer/internal/models"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations brings the database at dbPath up to the latest schema.
func RunMigrations(dbPath string) error {
	// separate connection so the caller's pool is left untouched
	migrateDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// SQLiteCorrectionLog records corrections in a SQLite database.
type SQLiteCorrectionLog struct {
	db     *sql.DB
	path   string
	logger logging.Logger
}

// NewSQLiteCorrectionLog opens (creating if needed) the database at dbPath
// and migrates it.
func NewSQLiteCorrectionLog(dbPath string, logger logging.Logger) (*SQLiteCorrectionLog, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), models.PermissionDirectory); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteCorrectionLog{db: db, path: dbPath, logger: logging.OrDiscard(logger)}, nil
}

// Append inserts a correction.
func (l *SQLiteCorrectionLog) Append(ctx context.Context, c models.Correction) error {
	var amount sql.NullFloat64
	if c.Amount != nil {
		amount = sql.NullFloat64{Float64: *c.Amount, Valid: true}
	}

	_, err := l.db.ExecContext(ctx,
		`INSERT INTO corrections (id, description, correct_category, amount, recorded_at) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Description, c.CorrectCategory, amount, c.RecordedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert correction: %w", err)
	}

	l.logger.Debug("Correction saved to SQLite",
		logging.Field{Key: logging.FieldFile, Value: l.path},
		logging.Field{Key: logging.FieldCorrection, Value: c.ID})
	return nil
}

// List returns every recorded correction in insertion order.
func (l *SQLiteCorrectionLog) List(ctx context.Context) ([]models.Correction, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, description, correct_category, amount, recorded_at FROM corrections ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query corrections: %w", err)
	}
	defer rows.Close()

	var out []models.Correction
	for rows.Next() {
		var (
			c          models.Correction
			amount     sql.NullFloat64
			recordedAt string
		)
		if err := rows.Scan(&c.ID, &c.Description, &c.CorrectCategory, &amount, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan correction: %w", err)
		}
		if amount.Valid {
			a := amount.Float64
			c.Amount = &a
		}
		if c.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt); err != nil {
			return nil, fmt.Errorf("parse recorded_at of %s: %w", c.ID, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate corrections: %w", err)
	}
	return out, nil
}

// Close closes the database.
func (l *SQLiteCorrectionLog) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}
