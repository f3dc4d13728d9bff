package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"fileuploader/internal/model"
	"fileuploader/internal/repository"
)

// CarSQL is a database/sql implementation of repository.CarRepository.
type CarSQL struct {
	db *sql.DB
}

// NewCarSQL creates a new CarSQL repository.
func NewCarSQL(db *sql.DB) *CarSQL {
	return &CarSQL{db: db}
}

var _ repository.CarRepository = (*CarSQL)(nil)

// Create inserts a car row. Documents are not written; their foreign key lives on documents.
func (r *CarSQL) Create(ctx context.Context, car *model.Car) (*model.Car, error) {
	const q = `INSERT INTO cars (model) VALUES ($1) RETURNING id`
	var id int64
	if err := r.db.QueryRowContext(ctx, q, car.Model).Scan(&id); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// FindByID fetches a car and attaches its documents.
func (r *CarSQL) FindByID(ctx context.Context, id int64) (*model.Car, error) {
	const q = `SELECT id, model FROM cars WHERE id = $1`
	var c model.Car
	var carID int64
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&carID, &c.Model); err != nil {
		return nil, notFound(err)
	}
	c.ID = model.Int64(carID)

	const qDocs = `
		SELECT id, title, size, mime_type
		FROM documents
		WHERE car_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, qDocs, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			docID int64
			mime  sql.NullString
			d     model.Document
		)
		if err := rows.Scan(&docID, &d.Title, &d.Size, &mime); err != nil {
			return nil, err
		}
		d.ID = model.Int64(docID)
		d.MimeType = stringPtr(mime)
		c.AddDocument(&d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ExistsByID reports whether the car row exists.
func (r *CarSQL) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM cars WHERE id = $1)`, id)
}

// Save updates the car's own columns.
func (r *CarSQL) Save(ctx context.Context, car *model.Car) (*model.Car, error) {
	if car.ID == nil {
		return nil, errors.New("save car: id is required")
	}
	const q = `UPDATE cars SET model = $1 WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, q, car.Model, *car.ID); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, *car.ID)
}

// FindAll returns all cars ordered by id, without their documents.
func (r *CarSQL) FindAll(ctx context.Context) ([]*model.Car, error) {
	const q = `SELECT id, model FROM cars ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*model.Car, 0)
	for rows.Next() {
		var (
			id int64
			c  model.Car
		)
		if err := rows.Scan(&id, &c.Model); err != nil {
			return nil, err
		}
		c.ID = model.Int64(id)
		items = append(items, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteByID removes the car row. The store rejects it while documents reference the car.
func (r *CarSQL) DeleteByID(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, `DELETE FROM cars WHERE id = $1`, id)
}
