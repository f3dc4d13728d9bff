package service

import (
	"context"

	"fileuploader/internal/model"
	"fileuploader/internal/repository"
)

// CarService defines the use cases for cars.
type CarService interface {
	// Create stores a new car. The car must not carry an id.
	Create(ctx context.Context, car *model.Car) (*model.Car, error)

	// Update replaces the car identified by id. Documents are not touched.
	Update(ctx context.Context, id int64, car *model.Car) (*model.Car, error)

	// PartialUpdate merges the present fields of patch onto the stored car.
	PartialUpdate(ctx context.Context, id int64, patch model.CarPatch) (*model.Car, error)

	// Get returns a car with its documents.
	Get(ctx context.Context, id int64) (*model.Car, error)

	// List returns all cars ordered by id.
	List(ctx context.Context) ([]*model.Car, error)

	// Delete removes a car. Missing cars are not an error.
	Delete(ctx context.Context, id int64) error
}

type carService struct {
	repo repository.CarRepository
}

// NewCarService constructs a new CarService.
func NewCarService(repo repository.CarRepository) CarService {
	return &carService{repo: repo}
}

func (s *carService) Create(ctx context.Context, car *model.Car) (*model.Car, error) {
	if car.ID != nil {
		return nil, ErrIDExists
	}
	if err := car.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, car)
}

func (s *carService) Update(ctx context.Context, id int64, car *model.Car) (*model.Car, error) {
	if err := checkIdentity(car.ID, id); err != nil {
		return nil, err
	}
	if err := mustExist(ctx, s.repo, id); err != nil {
		return nil, err
	}
	if err := car.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, car)
}

func (s *carService) PartialUpdate(ctx context.Context, id int64, patch model.CarPatch) (*model.Car, error) {
	if err := checkIdentity(patch.ID, id); err != nil {
		return nil, err
	}
	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	car.Merge(patch)
	if err := car.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, car)
}

func (s *carService) Get(ctx context.Context, id int64) (*model.Car, error) {
	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return car, nil
}

func (s *carService) List(ctx context.Context) ([]*model.Car, error) {
	return s.repo.FindAll(ctx)
}

func (s *carService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}
