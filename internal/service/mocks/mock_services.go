package mocks

import (
	"context"

	"fileuploader/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockCarService struct {
	mock.Mock
}

func (m *MockCarService) Create(ctx context.Context, car *model.Car) (*model.Car, error) {
	args := m.Called(ctx, car)
	return carOrNil(args.Get(0)), args.Error(1)
}

func (m *MockCarService) Update(ctx context.Context, id int64, car *model.Car) (*model.Car, error) {
	args := m.Called(ctx, id, car)
	return carOrNil(args.Get(0)), args.Error(1)
}

func (m *MockCarService) PartialUpdate(ctx context.Context, id int64, patch model.CarPatch) (*model.Car, error) {
	args := m.Called(ctx, id, patch)
	return carOrNil(args.Get(0)), args.Error(1)
}

func (m *MockCarService) Get(ctx context.Context, id int64) (*model.Car, error) {
	args := m.Called(ctx, id)
	return carOrNil(args.Get(0)), args.Error(1)
}

func (m *MockCarService) List(ctx context.Context) ([]*model.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Car), args.Error(1)
}

func (m *MockCarService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func carOrNil(v any) *model.Car {
	if v == nil {
		return nil
	}
	return v.(*model.Car)
}

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	args := m.Called(ctx, doc)
	return documentOrNil(args.Get(0)), args.Error(1)
}

func (m *MockDocumentService) Update(ctx context.Context, id int64, doc *model.Document) (*model.Document, error) {
	args := m.Called(ctx, id, doc)
	return documentOrNil(args.Get(0)), args.Error(1)
}

func (m *MockDocumentService) PartialUpdate(ctx context.Context, id int64, patch model.DocumentPatch) (*model.Document, error) {
	args := m.Called(ctx, id, patch)
	return documentOrNil(args.Get(0)), args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, id int64) (*model.Document, error) {
	args := m.Called(ctx, id)
	return documentOrNil(args.Get(0)), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context) ([]*model.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Document), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func documentOrNil(v any) *model.Document {
	if v == nil {
		return nil
	}
	return v.(*model.Document)
}

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Create(ctx context.Context, content *model.Content) (*model.Content, error) {
	args := m.Called(ctx, content)
	return contentOrNil(args.Get(0)), args.Error(1)
}

func (m *MockContentService) Update(ctx context.Context, id int64, content *model.Content) (*model.Content, error) {
	args := m.Called(ctx, id, content)
	return contentOrNil(args.Get(0)), args.Error(1)
}

func (m *MockContentService) PartialUpdate(ctx context.Context, id int64, patch model.ContentPatch) (*model.Content, error) {
	args := m.Called(ctx, id, patch)
	return contentOrNil(args.Get(0)), args.Error(1)
}

func (m *MockContentService) Get(ctx context.Context, id int64) (*model.Content, error) {
	args := m.Called(ctx, id)
	return contentOrNil(args.Get(0)), args.Error(1)
}

func (m *MockContentService) List(ctx context.Context, filter string) ([]*model.Content, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Content), args.Error(1)
}

func (m *MockContentService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func contentOrNil(v any) *model.Content {
	if v == nil {
		return nil
	}
	return v.(*model.Content)
}
