package mocks

import (
	"context"

	"fileuploader/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a testify mock of repository.Repository[T].
type MockRepository[T any] struct {
	mock.Mock
}

type (
	MockCarRepository      = MockRepository[model.Car]
	MockDocumentRepository = MockRepository[model.Document]
	MockContentRepository  = MockRepository[model.Content]
)

func (m *MockRepository[T]) Create(ctx context.Context, v *T) (*T, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository[T]) Save(ctx context.Context, v *T) (*T, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) FindAll(ctx context.Context) ([]*T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*T), args.Error(1)
}

func (m *MockRepository[T]) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
