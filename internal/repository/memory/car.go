package memory

import (
	"context"
	"errors"

	"fileuploader/internal/model"
	"fileuploader/internal/repository"
)

// CarRepo is an in-memory repository.CarRepository.
type CarRepo struct {
	s *Store
}

var _ repository.CarRepository = (*CarRepo)(nil)

func (r *CarRepo) Create(ctx context.Context, car *model.Car) (*model.Car, error) {
	r.s.mu.Lock()
	id := r.s.next("cars")
	r.s.cars[id] = carRow{model: car.Model}
	r.s.mu.Unlock()
	return r.FindByID(ctx, id)
}

func (r *CarRepo) FindByID(_ context.Context, id int64) (*model.Car, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	row, ok := r.s.cars[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	car := &model.Car{ID: model.Int64(id), Model: row.model}
	for _, docID := range sortedIDs(r.s.documents) {
		d := r.s.documents[docID]
		if d.carID != id {
			continue
		}
		car.AddDocument(&model.Document{
			ID:       model.Int64(docID),
			Title:    d.title,
			Size:     d.size,
			MimeType: cloneString(d.mimeType),
		})
	}
	return car, nil
}

func (r *CarRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.cars[id]
	return ok, nil
}

func (r *CarRepo) Save(ctx context.Context, car *model.Car) (*model.Car, error) {
	if car.ID == nil {
		return nil, errors.New("save car: id is required")
	}
	r.s.mu.Lock()
	if _, ok := r.s.cars[*car.ID]; ok {
		r.s.cars[*car.ID] = carRow{model: car.Model}
	}
	r.s.mu.Unlock()
	return r.FindByID(ctx, *car.ID)
}

func (r *CarRepo) FindAll(_ context.Context) ([]*model.Car, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	items := make([]*model.Car, 0, len(r.s.cars))
	for _, id := range sortedIDs(r.s.cars) {
		items = append(items, &model.Car{ID: model.Int64(id), Model: r.s.cars[id].model})
	}
	return items, nil
}

// DeleteByID fails with ErrCarInUse while documents reference the car.
func (r *CarRepo) DeleteByID(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, d := range r.s.documents {
		if d.carID == id {
			return ErrCarInUse
		}
	}
	delete(r.s.cars, id)
	return nil
}
