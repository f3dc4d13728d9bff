package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fileuploader/internal/model"
	"fileuploader/internal/repository"
)

// ContentSQL is a database/sql implementation of repository.ContentRepository.
type ContentSQL struct {
	db *sql.DB
}

// NewContentSQL creates a new ContentSQL repository.
func NewContentSQL(db *sql.DB) *ContentSQL {
	return &ContentSQL{db: db}
}

var _ repository.ContentRepository = (*ContentSQL)(nil)

const selectContent = `
	SELECT c.id, c.data, c.data_content_type, c.data_key, d.id, d.title, d.size, d.mime_type
	FROM contents c
	LEFT JOIN documents d ON d.content_id = c.id
`

// Create inserts a content row and, when a document is referenced, points that
// document at the new content.
func (r *ContentSQL) Create(ctx context.Context, content *model.Content) (*model.Content, error) {
	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		const q = `
			INSERT INTO contents (data, data_content_type, data_key)
			VALUES ($1, $2, $3)
			RETURNING id
		`
		if err := tx.QueryRowContext(ctx, q,
			content.Data,
			content.DataContentType,
			dataKey(content),
		).Scan(&id); err != nil {
			return err
		}
		return attachDocument(ctx, tx, id, content.Document)
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// FindByID fetches a content with a shallow view of its document.
func (r *ContentSQL) FindByID(ctx context.Context, id int64) (*model.Content, error) {
	row := r.db.QueryRowContext(ctx, selectContent+` WHERE c.id = $1`, id)
	c, err := scanContent(row)
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

// ExistsByID reports whether the content row exists.
func (r *ContentSQL) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM contents WHERE id = $1)`, id)
}

// Save rewrites the content columns. A nil Document leaves existing links alone.
func (r *ContentSQL) Save(ctx context.Context, content *model.Content) (*model.Content, error) {
	if content.ID == nil {
		return nil, errors.New("save content: id is required")
	}
	id := *content.ID
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		const q = `
			UPDATE contents
			SET data = $1, data_content_type = $2, data_key = $3
			WHERE id = $4
		`
		if _, err := tx.ExecContext(ctx, q,
			content.Data,
			content.DataContentType,
			dataKey(content),
			id,
		); err != nil {
			return err
		}
		return attachDocument(ctx, tx, id, content.Document)
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// FindAll returns all contents ordered by id.
func (r *ContentSQL) FindAll(ctx context.Context) ([]*model.Content, error) {
	rows, err := r.db.QueryContext(ctx, selectContent+` ORDER BY c.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*model.Content, 0)
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteByID removes the content row. The schema nulls the referencing document's content_id.
func (r *ContentSQL) DeleteByID(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, `DELETE FROM contents WHERE id = $1`, id)
}

// attachDocument makes doc the only document holding contentID.
func attachDocument(ctx context.Context, tx DBTX, contentID int64, doc *model.Document) error {
	if doc == nil || doc.ID == nil {
		return nil
	}
	if err := detachContent(ctx, tx, contentID, *doc.ID); err != nil {
		return err
	}
	const q = `UPDATE documents SET content_id = $1 WHERE id = $2`
	if _, err := tx.ExecContext(ctx, q, contentID, *doc.ID); err != nil {
		return fmt.Errorf("attach document %d: %w", *doc.ID, err)
	}
	return nil
}

func dataKey(c *model.Content) sql.NullString {
	if c.DataKey == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: c.DataKey, Valid: true}
}

func scanContent(s scanner) (*model.Content, error) {
	var (
		id       int64
		c        model.Content
		key      sql.NullString
		docID    sql.NullInt64
		docTitle sql.NullString
		docSize  sql.NullInt64
		docMime  sql.NullString
	)
	if err := s.Scan(&id, &c.Data, &c.DataContentType, &key, &docID, &docTitle, &docSize, &docMime); err != nil {
		return nil, err
	}
	c.ID = model.Int64(id)
	c.DataKey = key.String
	if docID.Valid {
		c.SetDocument(&model.Document{
			ID:       model.Int64(docID.Int64),
			Title:    docTitle.String,
			Size:     docSize.Int64,
			MimeType: stringPtr(docMime),
		})
	}
	return &c, nil
}
