package model

// Patches describe a merge-patch: a nil field means "leave the stored value alone".

// CarPatch is a sparse Car.
type CarPatch struct {
	ID    *int64
	Model *string
}

// DocumentPatch is a sparse Document. ContentID and CarID re-point the
// relationships when present.
type DocumentPatch struct {
	ID        *int64
	Title     *string
	Size      *int64
	MimeType  *string
	ContentID *int64
	CarID     *int64
}

// ContentPatch is a sparse Content.
type ContentPatch struct {
	ID              *int64
	Data            []byte
	DataContentType *string
}

// Merge copies every present field of p onto c.
func (c *Car) Merge(p CarPatch) *Car {
	if p.Model != nil {
		c.Model = *p.Model
	}
	return c
}

// Merge copies every present field of p onto d. Relationship ids go through the
// association setters so both sides stay consistent.
func (d *Document) Merge(p DocumentPatch) *Document {
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Size != nil {
		d.Size = *p.Size
	}
	if p.MimeType != nil {
		d.MimeType = String(*p.MimeType)
	}
	if p.ContentID != nil && (d.Content == nil || !sameID(d.Content.ID, p.ContentID)) {
		d.SetContent(&Content{ID: Int64(*p.ContentID)})
	}
	if p.CarID != nil && (d.Car == nil || !sameID(d.Car.ID, p.CarID)) {
		d.SetCar(&Car{ID: Int64(*p.CarID)})
	}
	return d
}

// Merge copies every present field of p onto c. Data is replaced as a whole.
func (c *Content) Merge(p ContentPatch) *Content {
	if p.Data != nil {
		c.Data = append([]byte(nil), p.Data...)
		c.DataKey = ""
	}
	if p.DataContentType != nil {
		c.DataContentType = *p.DataContentType
	}
	return c
}
