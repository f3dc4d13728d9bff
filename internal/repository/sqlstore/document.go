package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"fileuploader/internal/model"
	"fileuploader/internal/repository"
)

// DocumentSQL is a database/sql implementation of repository.DocumentRepository.
type DocumentSQL struct {
	db *sql.DB
}

// NewDocumentSQL creates a new DocumentSQL repository.
func NewDocumentSQL(db *sql.DB) *DocumentSQL {
	return &DocumentSQL{db: db}
}

var _ repository.DocumentRepository = (*DocumentSQL)(nil)

const selectDocument = `
	SELECT d.id, d.title, d.size, d.mime_type, c.id, c.data_content_type, car.id, car.model
	FROM documents d
	LEFT JOIN contents c ON c.id = d.content_id
	JOIN cars car ON car.id = d.car_id
`

// Create inserts a document. When it takes over a content, the previous holder
// is detached in the same transaction.
func (r *DocumentSQL) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	if doc.Car == nil || doc.Car.ID == nil {
		return nil, errors.New("create document: car id is required")
	}
	contentID := contentIDOf(doc)

	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if contentID.Valid {
			if err := detachContent(ctx, tx, contentID.Int64, 0); err != nil {
				return err
			}
		}
		const q = `
			INSERT INTO documents (title, size, mime_type, content_id, car_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		return tx.QueryRowContext(ctx, q,
			doc.Title,
			doc.Size,
			nullString(doc.MimeType),
			contentID,
			*doc.Car.ID,
		).Scan(&id)
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// FindByID fetches a document with shallow views of its content and car.
func (r *DocumentSQL) FindByID(ctx context.Context, id int64) (*model.Document, error) {
	row := r.db.QueryRowContext(ctx, selectDocument+` WHERE d.id = $1`, id)
	d, err := scanDocument(row)
	if err != nil {
		return nil, notFound(err)
	}
	return d, nil
}

// ExistsByID reports whether the document row exists.
func (r *DocumentSQL) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM documents WHERE id = $1)`, id)
}

// Save rewrites all columns of the document, including both foreign keys.
func (r *DocumentSQL) Save(ctx context.Context, doc *model.Document) (*model.Document, error) {
	if doc.ID == nil {
		return nil, errors.New("save document: id is required")
	}
	if doc.Car == nil || doc.Car.ID == nil {
		return nil, errors.New("save document: car id is required")
	}
	contentID := contentIDOf(doc)

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if contentID.Valid {
			if err := detachContent(ctx, tx, contentID.Int64, *doc.ID); err != nil {
				return err
			}
		}
		const q = `
			UPDATE documents
			SET title = $1, size = $2, mime_type = $3, content_id = $4, car_id = $5
			WHERE id = $6
		`
		_, err := tx.ExecContext(ctx, q,
			doc.Title,
			doc.Size,
			nullString(doc.MimeType),
			contentID,
			*doc.Car.ID,
			*doc.ID,
		)
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, *doc.ID)
}

// FindAll returns all documents ordered by id.
func (r *DocumentSQL) FindAll(ctx context.Context) ([]*model.Document, error) {
	rows, err := r.db.QueryContext(ctx, selectDocument+` ORDER BY d.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteByID removes the document row; its content is left in place.
func (r *DocumentSQL) DeleteByID(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, `DELETE FROM documents WHERE id = $1`, id)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(s scanner) (*model.Document, error) {
	var (
		id          int64
		d           model.Document
		mime        sql.NullString
		contentID   sql.NullInt64
		contentType sql.NullString
		carID       int64
		carModel    string
	)
	if err := s.Scan(&id, &d.Title, &d.Size, &mime, &contentID, &contentType, &carID, &carModel); err != nil {
		return nil, err
	}
	d.ID = model.Int64(id)
	d.MimeType = stringPtr(mime)
	if contentID.Valid {
		d.SetContent(&model.Content{ID: model.Int64(contentID.Int64), DataContentType: contentType.String})
	}
	d.SetCar(&model.Car{ID: model.Int64(carID), Model: carModel})
	return &d, nil
}

func contentIDOf(doc *model.Document) sql.NullInt64 {
	if doc.Content == nil {
		return sql.NullInt64{}
	}
	return nullID(doc.Content.ID)
}
