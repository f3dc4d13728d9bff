package model

import "encoding/json"

// JSON views break the Car <-> Document <-> Content cycle: a nested record never
// renders the relationship that points back at its parent.

type carJSON struct {
	ID        *int64            `json:"id"`
	Model     string            `json:"model"`
	Documents []documentRefJSON `json:"documents,omitempty"`
}

type carRefJSON struct {
	ID    *int64 `json:"id"`
	Model string `json:"model"`
}

type documentJSON struct {
	ID       *int64          `json:"id"`
	Title    string          `json:"title"`
	Size     int64           `json:"size"`
	MimeType *string         `json:"mimeType"`
	Content  *contentRefJSON `json:"content"`
	Car      *carRefJSON     `json:"car"`
}

type documentRefJSON struct {
	ID       *int64  `json:"id"`
	Title    string  `json:"title"`
	Size     int64   `json:"size"`
	MimeType *string `json:"mimeType"`
}

type contentJSON struct {
	ID              *int64           `json:"id"`
	Data            []byte           `json:"data"`
	DataContentType string           `json:"dataContentType"`
	Document        *documentRefJSON `json:"document"`
}

type contentRefJSON struct {
	ID              *int64 `json:"id"`
	DataContentType string `json:"dataContentType"`
}

func documentRef(d *Document) documentRefJSON {
	return documentRefJSON{ID: d.ID, Title: d.Title, Size: d.Size, MimeType: d.MimeType}
}

// MarshalJSON renders the car with its documents, without their content or car.
func (c Car) MarshalJSON() ([]byte, error) {
	out := carJSON{ID: c.ID, Model: c.Model}
	for _, d := range c.Documents {
		out.Documents = append(out.Documents, documentRef(d))
	}
	return json.Marshal(out)
}

// MarshalJSON renders the document with shallow views of its content and car.
func (d Document) MarshalJSON() ([]byte, error) {
	out := documentJSON{ID: d.ID, Title: d.Title, Size: d.Size, MimeType: d.MimeType}
	if d.Content != nil {
		out.Content = &contentRefJSON{ID: d.Content.ID, DataContentType: d.Content.DataContentType}
	}
	if d.Car != nil {
		out.Car = &carRefJSON{ID: d.Car.ID, Model: d.Car.Model}
	}
	return json.Marshal(out)
}

// MarshalJSON renders the content; Data is base64 encoded by encoding/json.
func (c Content) MarshalJSON() ([]byte, error) {
	out := contentJSON{ID: c.ID, Data: c.Data, DataContentType: c.DataContentType}
	if c.Document != nil {
		ref := documentRef(c.Document)
		out.Document = &ref
	}
	return json.Marshal(out)
}
