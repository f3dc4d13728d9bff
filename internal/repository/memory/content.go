package memory

import (
	"context"
	"errors"

	"fileuploader/internal/model"
	"fileuploader/internal/repository"
)

// ContentRepo is an in-memory repository.ContentRepository.
type ContentRepo struct {
	s *Store
}

var _ repository.ContentRepository = (*ContentRepo)(nil)

func (r *ContentRepo) Create(ctx context.Context, content *model.Content) (*model.Content, error) {
	r.s.mu.Lock()
	id := r.s.next("contents")
	r.s.contents[id] = contentRowOf(content)
	r.attach(id, content.Document)
	r.s.mu.Unlock()
	return r.FindByID(ctx, id)
}

func (r *ContentRepo) FindByID(_ context.Context, id int64) (*model.Content, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	row, ok := r.s.contents[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.hydrate(id, row), nil
}

func (r *ContentRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.contents[id]
	return ok, nil
}

// Save rewrites the content. A nil Document leaves existing links alone.
func (r *ContentRepo) Save(ctx context.Context, content *model.Content) (*model.Content, error) {
	if content.ID == nil {
		return nil, errors.New("save content: id is required")
	}
	id := *content.ID
	r.s.mu.Lock()
	if _, ok := r.s.contents[id]; ok {
		r.s.contents[id] = contentRowOf(content)
		r.attach(id, content.Document)
	}
	r.s.mu.Unlock()
	return r.FindByID(ctx, id)
}

func (r *ContentRepo) FindAll(_ context.Context) ([]*model.Content, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	items := make([]*model.Content, 0, len(r.s.contents))
	for _, id := range sortedIDs(r.s.contents) {
		items = append(items, r.hydrate(id, r.s.contents[id]))
	}
	return items, nil
}

// DeleteByID removes the content and nulls the referencing document's content id.
func (r *ContentRepo) DeleteByID(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.contents[id]; !ok {
		return nil
	}
	r.s.detachContent(id, 0)
	delete(r.s.contents, id)
	return nil
}

// attach makes doc the only holder of contentID. Unknown documents are ignored,
// like an UPDATE matching no rows. Callers hold the write lock.
func (r *ContentRepo) attach(contentID int64, doc *model.Document) {
	if doc == nil || doc.ID == nil {
		return
	}
	row, ok := r.s.documents[*doc.ID]
	if !ok {
		return
	}
	r.s.detachContent(contentID, *doc.ID)
	row.contentID = model.Int64(contentID)
	r.s.documents[*doc.ID] = row
}

// hydrate builds a content with a shallow view of its document. Callers hold a lock.
func (r *ContentRepo) hydrate(id int64, row contentRow) *model.Content {
	c := &model.Content{
		ID:              model.Int64(id),
		Data:            cloneBytes(row.data),
		DataContentType: row.dataContentType,
		DataKey:         row.dataKey,
	}
	if docID, ok := r.s.documentFor(id); ok {
		d := r.s.documents[docID]
		c.SetDocument(&model.Document{
			ID:       model.Int64(docID),
			Title:    d.title,
			Size:     d.size,
			MimeType: cloneString(d.mimeType),
		})
	}
	return c
}

func contentRowOf(c *model.Content) contentRow {
	return contentRow{
		data:            cloneBytes(c.Data),
		dataContentType: c.DataContentType,
		dataKey:         c.DataKey,
	}
}
