package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tracker_backend/platform/apperr"
	"tracker_backend/platform/db"
)

const entryNotFoundMessage = "catalog entry not found"

// Repo implements the catalog repository with PostgreSQL.
type Repo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// New creates a new catalog repository. Every store operation carries the
// given bounded timeout.
func New(pool *pgxpool.Pool, timeout time.Duration) *Repo {
	return &Repo{pool: pool, timeout: timeout}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// FindByName looks up an entry by name. The name column's level-2 collation
// makes the equality comparison case-insensitive.
func (r *Repo) FindByName(ctx context.Context, kind Kind, name string) (Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, kind, name, created_at
		FROM catalog_entries
		WHERE kind = $1 AND name = $2`

	var entry Entry
	var createdAt time.Time
	if err := r.pool.QueryRow(ctx, query, kind, name).Scan(
		&entry.ID, &entry.Kind, &entry.Name, &createdAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entry{}, apperr.NotFound(entryNotFoundMessage)
		}
		return Entry{}, db.StoreError("find catalog entry by name", err)
	}

	entry.CreatedAt = createdAt.Format(time.RFC3339)
	return entry, nil
}

// Create inserts a new entry. A unique violation on (kind, name) surfaces as
// a Conflict error so the service layer can fall back to the winner.
func (r *Repo) Create(ctx context.Context, kind Kind, name string) (Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO catalog_entries (kind, name)
		VALUES ($1, $2)
		RETURNING id, kind, name, created_at`

	var entry Entry
	var createdAt time.Time
	if err := r.pool.QueryRow(ctx, query, kind, name).Scan(
		&entry.ID, &entry.Kind, &entry.Name, &createdAt,
	); err != nil {
		if db.IsUniqueViolation(err) {
			return Entry{}, apperr.Conflict("catalog entry already exists")
		}
		return Entry{}, db.StoreError("create catalog entry", err)
	}

	entry.CreatedAt = createdAt.Format(time.RFC3339)
	return entry, nil
}

// Delete removes an entry by id. A missing id deletes zero rows and still
// reports success.
func (r *Repo) Delete(ctx context.Context, kind Kind, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `DELETE FROM catalog_entries WHERE id = $1 AND kind = $2`
	if _, err := r.pool.Exec(ctx, query, id, kind); err != nil {
		return db.StoreError("delete catalog entry", err)
	}
	return nil
}

// List returns all entries of a kind ordered by name ascending. The order is
// locale-aware: the column's ICU collation drives the comparison.
func (r *Repo) List(ctx context.Context, kind Kind) ([]Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, kind, name, created_at
		FROM catalog_entries
		WHERE kind = $1
		ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query, kind)
	if err != nil {
		return nil, db.StoreError("list catalog entries", err)
	}
	defer rows.Close()

	items := make([]Entry, 0)
	for rows.Next() {
		var entry Entry
		var createdAt time.Time
		if err := rows.Scan(&entry.ID, &entry.Kind, &entry.Name, &createdAt); err != nil {
			return nil, db.StoreError("scan catalog entry", err)
		}
		entry.CreatedAt = createdAt.Format(time.RFC3339)
		items = append(items, entry)
	}
	if rows.Err() != nil {
		return nil, db.StoreError("iterate catalog entries", rows.Err())
	}

	return items, nil
}

// Count returns the number of entries of a kind.
func (r *Repo) Count(ctx context.Context, kind Kind) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM catalog_entries WHERE kind = $1`, kind).Scan(&total); err != nil {
		return 0, db.StoreError("count catalog entries", err)
	}
	return total, nil
}
