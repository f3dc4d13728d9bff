package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"

	"fileuploader/internal/model"
	"fileuploader/internal/repository"
	"fileuploader/internal/storage"
)

// FilterDocumentIsNull selects contents that no document references.
const FilterDocumentIsNull = "document-is-null"

// ContentService defines the use cases for contents.
type ContentService interface {
	// Create stores a new content. A referenced document is re-pointed at it.
	Create(ctx context.Context, content *model.Content) (*model.Content, error)

	// Update replaces the content identified by id.
	Update(ctx context.Context, id int64, content *model.Content) (*model.Content, error)

	// PartialUpdate merges the present fields of patch onto the stored content.
	PartialUpdate(ctx context.Context, id int64, patch model.ContentPatch) (*model.Content, error)

	// Get returns a content with its data and document.
	Get(ctx context.Context, id int64) (*model.Content, error)

	// List returns all contents ordered by id. FilterDocumentIsNull keeps the
	// unreferenced ones; any other filter is ignored.
	List(ctx context.Context, filter string) ([]*model.Content, error)

	// Delete removes a content and its stored object. The referencing document keeps existing.
	Delete(ctx context.Context, id int64) error
}

type contentService struct {
	store     storage.Storage
	repo      repository.ContentRepository
	documents repository.DocumentRepository
}

// NewContentService constructs a new ContentService. When store is nil the data
// stays in the repository; otherwise it is uploaded and only the object key is persisted.
func NewContentService(store storage.Storage, repo repository.ContentRepository, documents repository.DocumentRepository) ContentService {
	return &contentService{store: store, repo: repo, documents: documents}
}

func (s *contentService) Create(ctx context.Context, content *model.Content) (*model.Content, error) {
	if content.ID != nil {
		return nil, ErrIDExists
	}
	if err := s.check(ctx, content); err != nil {
		return nil, err
	}
	return s.persist(ctx, content, "", s.repo.Create)
}

func (s *contentService) Update(ctx context.Context, id int64, content *model.Content) (*model.Content, error) {
	if err := checkIdentity(content.ID, id); err != nil {
		return nil, err
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	content.DataKey = ""
	if err := s.check(ctx, content); err != nil {
		return nil, err
	}
	return s.persist(ctx, content, current.DataKey, s.repo.Save)
}

func (s *contentService) PartialUpdate(ctx context.Context, id int64, patch model.ContentPatch) (*model.Content, error) {
	if err := checkIdentity(patch.ID, id); err != nil {
		return nil, err
	}
	content, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	oldKey := content.DataKey
	content.Merge(patch)
	if err := content.Validate(); err != nil {
		return nil, err
	}
	saved, err := s.persist(ctx, content, oldKey, s.repo.Save)
	if err != nil {
		return nil, err
	}
	if saved.Data == nil {
		return saved, s.load(ctx, saved)
	}
	return saved, nil
}

func (s *contentService) Get(ctx context.Context, id int64) (*model.Content, error) {
	content, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if err := s.load(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *contentService) List(ctx context.Context, filter string) ([]*model.Content, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := all
	if filter == FilterDocumentIsNull {
		items = make([]*model.Content, 0, len(all))
		for _, c := range all {
			if c.Document == nil {
				items = append(items, c)
			}
		}
	}
	for _, c := range items {
		if err := s.load(ctx, c); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// Delete removes the stored object first, then the row.
func (s *contentService) Delete(ctx context.Context, id int64) error {
	if s.store != nil {
		content, err := s.repo.FindByID(ctx, id)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil
		case err != nil:
			return err
		}
		if content.DataKey != "" {
			if err := s.store.Delete(ctx, content.DataKey); err != nil {
				return fmt.Errorf("delete storage: %w", err)
			}
		}
	}
	return s.repo.DeleteByID(ctx, id)
}

func (s *contentService) check(ctx context.Context, content *model.Content) error {
	if err := content.Validate(); err != nil {
		return err
	}
	if content.Document != nil {
		return referenced(ctx, s.documents, "document", content.Document.ID)
	}
	return nil
}

type writeFunc func(ctx context.Context, content *model.Content) (*model.Content, error)

// persist writes content through write. With a blob store, fresh data is uploaded
// first and removed again when the write fails; a replaced object is removed
// after a successful write.
func (s *contentService) persist(ctx context.Context, content *model.Content, oldKey string, write writeFunc) (*model.Content, error) {
	if s.store == nil || content.Data == nil {
		return write(ctx, content)
	}

	data := content.Data
	key := path.Join("contents", uuid.NewString())
	if _, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: content.DataContentType,
	}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	content.Data = nil
	content.DataKey = key
	stored, err := write(ctx, content)
	content.Data = data
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	if oldKey != "" && oldKey != key {
		// A failed cleanup leaves an orphan object behind, not a broken record.
		_ = s.store.Delete(ctx, oldKey)
	}
	stored.Data = data
	return stored, nil
}

// load fills Data from the blob store when the row only carries a key.
func (s *contentService) load(ctx context.Context, content *model.Content) error {
	if content.DataKey == "" || content.Data != nil {
		return nil
	}
	if s.store == nil {
		return fmt.Errorf("content %d: data stored under %q but no blob store is configured", *content.ID, content.DataKey)
	}
	rc, _, err := s.store.Get(ctx, content.DataKey)
	if err != nil {
		return fmt.Errorf("read storage: %w", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("read storage: %w", err)
	}
	content.Data = data
	return nil
}
