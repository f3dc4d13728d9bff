package model

// Car owns a collection of Documents. The foreign key lives on Document, so the
// collection is a view that is only meaningful while both sides are in memory.
type Car struct {
	ID        *int64
	Model     string
	Documents []*Document
}

// Equal reports whether c and o denote the same car: the same instance, or both
// persisted with matching ids.
func (c *Car) Equal(o *Car) bool {
	if c == nil || o == nil {
		return false
	}
	return c == o || sameID(c.ID, o.ID)
}

// HasDocument reports whether d is a member of the car's collection.
func (c *Car) HasDocument(d *Document) bool {
	return c.indexOf(d) >= 0
}

// AddDocument adds d to the collection and points d back at c.
func (c *Car) AddDocument(d *Document) *Car {
	if d != nil {
		d.SetCar(c)
	}
	return c
}

// RemoveDocument drops d from the collection and clears its car.
func (c *Car) RemoveDocument(d *Document) *Car {
	if d == nil {
		return c
	}
	if d.Car.Equal(c) {
		d.SetCar(nil)
		return c
	}
	c.unlink(d)
	return c
}

// SetDocuments replaces the whole collection. Every previously held document
// loses its car before the new members are attached. docs may alias c.Documents.
func (c *Car) SetDocuments(docs []*Document) *Car {
	next := append([]*Document(nil), docs...)
	previous := append([]*Document(nil), c.Documents...)
	for _, d := range previous {
		d.SetCar(nil)
	}
	c.Documents = nil
	for _, d := range next {
		if d != nil {
			d.SetCar(c)
		}
	}
	return c
}

func (c *Car) indexOf(d *Document) int {
	for i, held := range c.Documents {
		if held.Equal(d) {
			return i
		}
	}
	return -1
}

func (c *Car) link(d *Document) {
	if c.indexOf(d) < 0 {
		c.Documents = append(c.Documents, d)
	}
}

func (c *Car) unlink(d *Document) {
	if i := c.indexOf(d); i >= 0 {
		c.Documents = append(c.Documents[:i], c.Documents[i+1:]...)
	}
}
