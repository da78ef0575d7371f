package repository

import (
	"context"

	"github.com/google/uuid"
)

// Kind identifies one of the three reference catalogs.
type Kind string

const (
	KindStaff    Kind = "staff"
	KindService  Kind = "service"
	KindCategory Kind = "category"
)

// Valid reports whether the kind is one of the known catalogs.
func (k Kind) Valid() bool {
	switch k {
	case KindStaff, KindService, KindCategory:
		return true
	default:
		return false
	}
}

// Entry is a single catalog entry.
type Entry struct {
	ID        uuid.UUID
	Kind      Kind
	Name      string
	CreatedAt string
}

// Repository abstracts catalog persistence. Name matching is
// case-insensitive under the store's level-2 collation: case is ignored,
// diacritics remain distinguishing.
type Repository interface {
	// FindByName looks up an entry by case-insensitive name.
	// Returns a NotFound error when no entry matches.
	FindByName(ctx context.Context, kind Kind, name string) (Entry, error)
	// Create inserts a new entry. Returns a Conflict error when a
	// case-insensitive duplicate already exists.
	Create(ctx context.Context, kind Kind, name string) (Entry, error)
	// Delete removes an entry by id. Deleting a missing id is not an error.
	Delete(ctx context.Context, kind Kind, id uuid.UUID) error
	// List returns all entries of a kind ordered by name ascending under
	// the store collation.
	List(ctx context.Context, kind Kind) ([]Entry, error)
	// Count returns the number of entries of a kind.
	Count(ctx context.Context, kind Kind) (int, error)
}
