package csvload

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const autoCategoryDescription = "Category created automatically"

// Summary reports what one load run did.
type Summary struct {
	NewItems          int
	UpdatedItems      int
	SkippedRows       int
	CategoriesCreated int
}

// Loader performs bulk catalog loads straight against Postgres. It bypasses
// the ORM: one transaction per run, plain SQL upserts.
type Loader struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewLoader(pool *pgxpool.Pool, logger *slog.Logger) *Loader {
	return &Loader{pool: pool, logger: logger}
}

// Run reads a header-mapped CSV stream and upserts every row. Items are
// matched by title: existing ones get refreshed in place, new ones are
// inserted. Rows that cannot be parsed are logged and skipped; they never
// abort the run.
func (l *Loader) Run(ctx context.Context, r io.Reader) (*Summary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headerRow, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	header := ParseHeader(headerRow)

	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	summary := &Summary{}
	// Genres already resolved this run, mapped to their category ids.
	categories := make(map[string]int64)

	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			l.logger.Warn("unreadable row", "line", line, "error", err)
			summary.SkippedRows++
			continue
		}

		record, err := ParseRecord(header, row)
		if err != nil {
			l.logger.Warn("skipping row", "line", line, "error", err)
			summary.SkippedRows++
			continue
		}

		var primary *int64
		for i, genre := range record.Genres {
			id, ok := categories[genre]
			if !ok {
				var created bool
				id, created, err = l.ensureCategory(ctx, tx, genre)
				if err != nil {
					return nil, fmt.Errorf("resolving category %q: %w", genre, err)
				}
				categories[genre] = id
				if created {
					summary.CategoriesCreated++
				}
			}
			if i == 0 {
				primary = &id
			}
		}

		inserted, err := l.upsertItem(ctx, tx, record, primary)
		if err != nil {
			return nil, fmt.Errorf("upserting %q: %w", record.Title, err)
		}
		if inserted {
			summary.NewItems++
		} else {
			summary.UpdatedItems++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing: %w", err)
	}
	return summary, nil
}

func (l *Loader) ensureCategory(ctx context.Context, tx pgx.Tx, name string) (int64, bool, error) {
	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM categories WHERE name = $1`, name).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, false, err
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING id`,
		name, autoCategoryDescription,
	).Scan(&id)
	if err != nil {
		return 0, false, err
	}
	l.logger.Info("created category", "name", name, "id", id)
	return id, true, nil
}

func (l *Loader) upsertItem(ctx context.Context, tx pgx.Tx, record Record, categoryID *int64) (bool, error) {
	var poster *string
	if record.PosterURL != "" {
		poster = &record.PosterURL
	}

	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM items WHERE title = $1`, record.Title).Scan(&id)
	switch {
	case err == nil:
		_, err = tx.Exec(ctx,
			`UPDATE items
			 SET year = $1, synopsis = $2, poster_url = $3, type = $4,
			     director = $5, cast_list = $6, category_id = $7
			 WHERE id = $8`,
			record.Year, record.Synopsis, poster, record.Type,
			record.Director, record.Cast, categoryID, id,
		)
		return false, err
	case errors.Is(err, pgx.ErrNoRows):
		_, err = tx.Exec(ctx,
			`INSERT INTO items
			     (title, year, synopsis, poster_url, type, director, cast_list,
			      category_id, sort_key, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, now())`,
			record.Title, record.Year, record.Synopsis, poster,
			record.Type, record.Director, record.Cast, categoryID,
		)
		return true, err
	default:
		return false, err
	}
}
