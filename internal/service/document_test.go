package service

import (
	"context"
	"testing"

	"fileuploader/internal/model"
	repoMocks "fileuploader/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type documentMocks struct {
	docs     *repoMocks.MockDocumentRepository
	cars     *repoMocks.MockCarRepository
	contents *repoMocks.MockContentRepository
}

func newDocumentService() (DocumentService, documentMocks) {
	m := documentMocks{
		docs:     new(repoMocks.MockDocumentRepository),
		cars:     new(repoMocks.MockCarRepository),
		contents: new(repoMocks.MockContentRepository),
	}
	return NewDocumentService(m.docs, m.cars, m.contents), m
}

func newDocument(id *int64) *model.Document {
	d := &model.Document{ID: id, Title: "manual", Size: 10}
	return d.SetCar(&model.Car{ID: model.Int64(1)})
}

func TestDocumentService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		doc        func() *model.Document
		setupMocks func(m documentMocks)
		wantErr    error
	}{
		{
			name: "happy path with content",
			doc: func() *model.Document {
				return newDocument(nil).SetContent(&model.Content{ID: model.Int64(7)})
			},
			setupMocks: func(m documentMocks) {
				m.cars.On("ExistsByID", ctx, int64(1)).Return(true, nil)
				m.contents.On("ExistsByID", ctx, int64(7)).Return(true, nil)
				m.docs.On("Create", ctx, mock.Anything).Return(newDocument(model.Int64(3)), nil)
			},
		},
		{
			name:       "id already assigned",
			doc:        func() *model.Document { return newDocument(model.Int64(3)) },
			setupMocks: func(m documentMocks) {},
			wantErr:    ErrIDExists,
		},
		{
			name: "missing car",
			doc: func() *model.Document {
				return &model.Document{Title: "manual", Size: 1}
			},
			setupMocks: func(m documentMocks) {},
			wantErr:    model.ErrValidation,
		},
		{
			name: "negative size",
			doc: func() *model.Document {
				d := newDocument(nil)
				d.Size = -1
				return d
			},
			setupMocks: func(m documentMocks) {},
			wantErr:    model.ErrValidation,
		},
		{
			name: "unknown car",
			doc:  func() *model.Document { return newDocument(nil) },
			setupMocks: func(m documentMocks) {
				m.cars.On("ExistsByID", ctx, int64(1)).Return(false, nil)
			},
			wantErr: ErrReferenceNotFound,
		},
		{
			name: "unknown content",
			doc: func() *model.Document {
				return newDocument(nil).SetContent(&model.Content{ID: model.Int64(7)})
			},
			setupMocks: func(m documentMocks) {
				m.cars.On("ExistsByID", ctx, int64(1)).Return(true, nil)
				m.contents.On("ExistsByID", ctx, int64(7)).Return(false, nil)
			},
			wantErr: ErrReferenceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newDocumentService()
			tt.setupMocks(m)

			doc, err := svc.Create(ctx, tt.doc())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, doc)
				m.docs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(3), *doc.ID)
			}
			m.docs.AssertExpectations(t)
			m.cars.AssertExpectations(t)
			m.contents.AssertExpectations(t)
		})
	}
}

func TestDocumentService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("absent target", func(t *testing.T) {
		svc, m := newDocumentService()
		m.docs.On("ExistsByID", ctx, int64(3)).Return(false, nil)

		_, err := svc.Update(ctx, 3, newDocument(model.Int64(3)))

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("id mismatch", func(t *testing.T) {
		svc, _ := newDocumentService()

		_, err := svc.Update(ctx, 4, newDocument(model.Int64(3)))

		assert.ErrorIs(t, err, ErrIDInvalid)
	})

	t.Run("saves", func(t *testing.T) {
		svc, m := newDocumentService()
		m.docs.On("ExistsByID", ctx, int64(3)).Return(true, nil)
		m.cars.On("ExistsByID", ctx, int64(1)).Return(true, nil)
		m.docs.On("Save", ctx, mock.Anything).Return(newDocument(model.Int64(3)), nil)

		doc, err := svc.Update(ctx, 3, newDocument(model.Int64(3)))

		assert.NoError(t, err)
		assert.Equal(t, "manual", doc.Title)
		m.docs.AssertExpectations(t)
	})
}

func TestDocumentService_PartialUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("moves the document to another car", func(t *testing.T) {
		svc, m := newDocumentService()
		m.docs.On("FindByID", ctx, int64(3)).Return(newDocument(model.Int64(3)), nil)
		m.cars.On("ExistsByID", ctx, int64(2)).Return(true, nil)
		m.docs.On("Save", ctx, mock.MatchedBy(func(d *model.Document) bool {
			return *d.Car.ID == 2 && d.Title == "manual" && d.Car.HasDocument(d)
		})).Return(newDocument(model.Int64(3)), nil)

		_, err := svc.PartialUpdate(ctx, 3, model.DocumentPatch{ID: model.Int64(3), CarID: model.Int64(2)})

		assert.NoError(t, err)
		m.docs.AssertExpectations(t)
		m.contents.AssertNotCalled(t, "ExistsByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown content", func(t *testing.T) {
		svc, m := newDocumentService()
		m.docs.On("FindByID", ctx, int64(3)).Return(newDocument(model.Int64(3)), nil)
		m.contents.On("ExistsByID", ctx, int64(8)).Return(false, nil)

		_, err := svc.PartialUpdate(ctx, 3, model.DocumentPatch{ID: model.Int64(3), ContentID: model.Int64(8)})

		assert.ErrorIs(t, err, ErrReferenceNotFound)
		m.docs.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
