package model

// Content holds the binary payload of a Document. It is the inverse side of the
// one-to-one relationship; the foreign key is stored on Document.
type Content struct {
	ID              *int64
	Data            []byte
	DataContentType string
	Document        *Document

	// DataKey is the object-storage key when Data is kept outside the database.
	DataKey string
}

// Equal reports whether c and o denote the same content.
func (c *Content) Equal(o *Content) bool {
	if c == nil || o == nil {
		return false
	}
	return c == o || sameID(c.ID, o.ID)
}

// SetDocument attaches c to doc. The previous document drops its content and
// doc drops whatever content it held before.
func (c *Content) SetDocument(doc *Document) *Content {
	if c.Document == doc {
		if doc != nil {
			doc.Content = c
		}
		return c
	}
	if old := c.Document; old != nil && old.Content.Equal(c) {
		old.Content = nil
	}
	c.Document = doc
	if doc != nil {
		if held := doc.Content; held != nil && !held.Equal(c) {
			held.Document = nil
		}
		doc.Content = c
	}
	return c
}
