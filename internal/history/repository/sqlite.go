package repository

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"blk2json/internal/history/models"

	"github.com/google/uuid"
)

//go:embed migrations/*.sql
var migrations embed.FS

var ErrNotFound = errors.New("conversion not found")

// ============================================================
// SQLite Repository
// ============================================================

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Init применяет встроенные миграции.
func (r *Repository) Init(ctx context.Context) error {
	if err := r.runMigrations(ctx); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

// Save записывает конверсию и возвращает её с присвоенным ID.
func (r *Repository) Save(ctx context.Context, rec models.Record) (*models.Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO conversions (id, source, output, lines, quads, key_order)
        VALUES (?, ?, ?, ?, ?, ?)
    `, rec.ID, rec.Source, rec.Output, rec.Lines, rec.Quads, rec.KeyOrder)
	if err != nil {
		return nil, fmt.Errorf("insert conversion: %w", err)
	}

	return r.GetByID(ctx, rec.ID)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*models.Record, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, source, output, lines, quads, key_order, created_at
        FROM conversions
        WHERE id = ?
    `, id)

	var rec models.Record
	if err := row.Scan(&rec.ID, &rec.Source, &rec.Output, &rec.Lines, &rec.Quads, &rec.KeyOrder, &rec.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// List возвращает последние конверсии, новые первыми.
func (r *Repository) List(ctx context.Context, limit int) ([]models.Record, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
        SELECT id, source, output, lines, quads, key_order, created_at
        FROM conversions
        ORDER BY created_at DESC, rowid DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("query conversions: %w", err)
	}
	defer rows.Close()

	records := []models.Record{}
	for rows.Next() {
		var rec models.Record
		if err := rows.Scan(&rec.ID, &rec.Source, &rec.Output, &rec.Lines, &rec.Quads, &rec.KeyOrder, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ============================================================
// Migrations
// ============================================================

func (r *Repository) runMigrations(ctx context.Context) error {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := r.db.ExecContext(ctx, string(data)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}

// OpenSQLite открывает sqlite по указанному пути.
// Драйвер регистрируется импортом github.com/ncruces/go-sqlite3/driver.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
