package memory

import (
	"context"
	"errors"

	"fileuploader/internal/model"
	"fileuploader/internal/repository"
)

// DocumentRepo is an in-memory repository.DocumentRepository.
type DocumentRepo struct {
	s *Store
}

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

func (r *DocumentRepo) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	row, err := documentRowOf(doc)
	if err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	if err := r.s.checkDocumentRefs(row); err != nil {
		r.s.mu.Unlock()
		return nil, err
	}
	id := r.s.next("documents")
	if row.contentID != nil {
		r.s.detachContent(*row.contentID, id)
	}
	r.s.documents[id] = row
	r.s.mu.Unlock()

	return r.FindByID(ctx, id)
}

func (r *DocumentRepo) FindByID(_ context.Context, id int64) (*model.Document, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	row, ok := r.s.documents[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.hydrate(id, row), nil
}

func (r *DocumentRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.documents[id]
	return ok, nil
}

func (r *DocumentRepo) Save(ctx context.Context, doc *model.Document) (*model.Document, error) {
	if doc.ID == nil {
		return nil, errors.New("save document: id is required")
	}
	row, err := documentRowOf(doc)
	if err != nil {
		return nil, err
	}
	id := *doc.ID

	r.s.mu.Lock()
	if _, ok := r.s.documents[id]; ok {
		if err := r.s.checkDocumentRefs(row); err != nil {
			r.s.mu.Unlock()
			return nil, err
		}
		if row.contentID != nil {
			r.s.detachContent(*row.contentID, id)
		}
		r.s.documents[id] = row
	}
	r.s.mu.Unlock()

	return r.FindByID(ctx, id)
}

func (r *DocumentRepo) FindAll(_ context.Context) ([]*model.Document, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	items := make([]*model.Document, 0, len(r.s.documents))
	for _, id := range sortedIDs(r.s.documents) {
		items = append(items, r.hydrate(id, r.s.documents[id]))
	}
	return items, nil
}

func (r *DocumentRepo) DeleteByID(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.documents, id)
	return nil
}

// hydrate builds a document with shallow views of its content and car. Callers hold a lock.
func (r *DocumentRepo) hydrate(id int64, row documentRow) *model.Document {
	d := &model.Document{
		ID:       model.Int64(id),
		Title:    row.title,
		Size:     row.size,
		MimeType: cloneString(row.mimeType),
	}
	if row.contentID != nil {
		c := r.s.contents[*row.contentID]
		d.SetContent(&model.Content{ID: model.Int64(*row.contentID), DataContentType: c.dataContentType})
	}
	d.SetCar(&model.Car{ID: model.Int64(row.carID), Model: r.s.cars[row.carID].model})
	return d
}

func documentRowOf(doc *model.Document) (documentRow, error) {
	if doc.Car == nil || doc.Car.ID == nil {
		return documentRow{}, errors.New("document: car id is required")
	}
	row := documentRow{
		title:    doc.Title,
		size:     doc.Size,
		mimeType: cloneString(doc.MimeType),
		carID:    *doc.Car.ID,
	}
	if doc.Content != nil && doc.Content.ID != nil {
		row.contentID = model.Int64(*doc.Content.ID)
	}
	return row, nil
}
