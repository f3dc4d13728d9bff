package model

// Document is the owning side of both of its relationships: it references at
// most one Content and exactly one Car.
type Document struct {
	ID       *int64
	Title    string
	Size     int64
	MimeType *string
	Content  *Content
	Car      *Car
}

// Equal reports whether d and o denote the same document.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return false
	}
	return d == o || sameID(d.ID, o.ID)
}

// SetContent points d at content. The previous content loses its back-reference,
// and a document that previously held content is detached from it.
func (d *Document) SetContent(content *Content) *Document {
	if d.Content == content {
		if content != nil {
			content.Document = d
		}
		return d
	}
	if old := d.Content; old != nil && old.Document.Equal(d) {
		old.Document = nil
	}
	d.Content = content
	if content != nil {
		if holder := content.Document; holder != nil && !holder.Equal(d) {
			holder.Content = nil
		}
		content.Document = d
	}
	return d
}

// SetCar moves d into car's collection, removing it from the previous car's.
func (d *Document) SetCar(car *Car) *Document {
	if old := d.Car; old != nil && old != car {
		old.unlink(d)
	}
	d.Car = car
	if car != nil {
		car.link(d)
	}
	return d
}
