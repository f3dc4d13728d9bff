// Package repository contains data access layer abstractions.
// Implementations live in subpackages (sqlstore, memory) inside this directory.
package repository

import (
	"context"
	"errors"

	"fileuploader/internal/model"
)

// ErrNotFound is returned by FindByID when no record has the requested id.
var ErrNotFound = errors.New("record not found")

// Repository is the generic persistence contract shared by every entity.
// No business logic here, only persistence operations.
type Repository[T any] interface {
	// Create inserts a new record and returns it with the store-assigned id.
	Create(ctx context.Context, v *T) (*T, error)

	// FindByID returns the record with its relationships hydrated, or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*T, error)

	// ExistsByID reports whether a record with the given id is stored.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Save replaces the stored record that has the same id.
	Save(ctx context.Context, v *T) (*T, error)

	// FindAll returns every record ordered by id.
	FindAll(ctx context.Context) ([]*T, error)

	// DeleteByID removes a record. It returns nil if the record did not exist.
	DeleteByID(ctx context.Context, id int64) error
}

// CarRepository persists cars. Saving a car never rewrites its documents.
type CarRepository interface {
	Repository[model.Car]
}

// DocumentRepository persists documents together with their content and car foreign keys.
type DocumentRepository interface {
	Repository[model.Document]
}

// ContentRepository persists content blobs. A non-nil Document on a saved
// content re-points that document's foreign key.
type ContentRepository interface {
	Repository[model.Content]
}
