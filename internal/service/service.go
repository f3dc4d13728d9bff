// Package service holds the use cases behind the HTTP handlers: identity checks,
// reference checks, merge-patch orchestration and Content blob offload.
package service

import (
	"context"
	"errors"
	"fmt"

	"fileuploader/internal/repository"
)

var (
	ErrIDExists          = errors.New("a new entity cannot already have an id")
	ErrIDNull            = errors.New("invalid id")
	ErrIDInvalid         = errors.New("id does not match the path id")
	ErrNotFound          = errors.New("entity not found")
	ErrReferenceNotFound = errors.New("referenced entity not found")
)

// notFound maps repository.ErrNotFound to ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// checkIdentity enforces the update rules: the body id is present and equals the path id.
func checkIdentity(bodyID *int64, pathID int64) error {
	if bodyID == nil {
		return ErrIDNull
	}
	if *bodyID != pathID {
		return ErrIDInvalid
	}
	return nil
}

// exister is the subset of a repository needed for reference checks.
type exister interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// mustExist returns ErrNotFound when id is not stored in repo.
func mustExist(ctx context.Context, repo exister, id int64) error {
	ok, err := repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// referenced returns ErrReferenceNotFound when a related record is missing.
func referenced(ctx context.Context, repo exister, what string, id *int64) error {
	if id == nil {
		return fmt.Errorf("%w: %s without id", ErrReferenceNotFound, what)
	}
	ok, err := repo.ExistsByID(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s %d", ErrReferenceNotFound, what, *id)
	}
	return nil
}
