package service

import (
	"context"

	"fileuploader/internal/model"
	"fileuploader/internal/repository"
)

// DocumentService defines the use cases for documents.
type DocumentService interface {
	// Create stores a new document. Taking over a content detaches it from its previous holder.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// Update replaces the document identified by id, including both relationships.
	Update(ctx context.Context, id int64, doc *model.Document) (*model.Document, error)

	// PartialUpdate merges the present fields of patch onto the stored document.
	PartialUpdate(ctx context.Context, id int64, patch model.DocumentPatch) (*model.Document, error)

	// Get returns a document with its content and car.
	Get(ctx context.Context, id int64) (*model.Document, error)

	// List returns all documents ordered by id.
	List(ctx context.Context) ([]*model.Document, error)

	// Delete removes a document. Its content is kept.
	Delete(ctx context.Context, id int64) error
}

type documentService struct {
	repo     repository.DocumentRepository
	cars     repository.CarRepository
	contents repository.ContentRepository
}

// NewDocumentService constructs a new DocumentService. cars and contents are
// used to check the references a document points at.
func NewDocumentService(repo repository.DocumentRepository, cars repository.CarRepository, contents repository.ContentRepository) DocumentService {
	return &documentService{repo: repo, cars: cars, contents: contents}
}

func (s *documentService) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	if doc.ID != nil {
		return nil, ErrIDExists
	}
	if err := s.check(ctx, doc); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, doc)
}

func (s *documentService) Update(ctx context.Context, id int64, doc *model.Document) (*model.Document, error) {
	if err := checkIdentity(doc.ID, id); err != nil {
		return nil, err
	}
	if err := mustExist(ctx, s.repo, id); err != nil {
		return nil, err
	}
	if err := s.check(ctx, doc); err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, doc)
}

func (s *documentService) PartialUpdate(ctx context.Context, id int64, patch model.DocumentPatch) (*model.Document, error) {
	if err := checkIdentity(patch.ID, id); err != nil {
		return nil, err
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	doc.Merge(patch)
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if patch.CarID != nil {
		if err := referenced(ctx, s.cars, "car", patch.CarID); err != nil {
			return nil, err
		}
	}
	if patch.ContentID != nil {
		if err := referenced(ctx, s.contents, "content", patch.ContentID); err != nil {
			return nil, err
		}
	}
	return s.repo.Save(ctx, doc)
}

func (s *documentService) Get(ctx context.Context, id int64) (*model.Document, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return doc, nil
}

func (s *documentService) List(ctx context.Context) ([]*model.Document, error) {
	return s.repo.FindAll(ctx)
}

func (s *documentService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

// check validates doc and confirms that its car and content exist.
func (s *documentService) check(ctx context.Context, doc *model.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	if err := referenced(ctx, s.cars, "car", doc.Car.ID); err != nil {
		return err
	}
	if doc.Content != nil {
		return referenced(ctx, s.contents, "content", doc.Content.ID)
	}
	return nil
}
