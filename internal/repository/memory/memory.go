// Package memory implements the repositories in process memory. It keeps rows
// with foreign keys, the same shape the SQL schema uses, so relationship
// behaviour matches the sqlstore package.
package memory

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"fileuploader/internal/model"
)

// ErrCarInUse is returned when deleting a car that documents still reference.
var ErrCarInUse = errors.New("car is referenced by documents")

type carRow struct {
	model string
}

type documentRow struct {
	title     string
	size      int64
	mimeType  *string
	contentID *int64
	carID     int64
}

type contentRow struct {
	data            []byte
	dataContentType string
	dataKey         string
}

// Store holds the rows of all three tables behind one lock.
type Store struct {
	mu        sync.RWMutex
	seq       map[string]int64
	cars      map[int64]carRow
	documents map[int64]documentRow
	contents  map[int64]contentRow
}

// New returns an empty store.
func New() *Store {
	return &Store{
		seq:       make(map[string]int64),
		cars:      make(map[int64]carRow),
		documents: make(map[int64]documentRow),
		contents:  make(map[int64]contentRow),
	}
}

// Cars returns a CarRepository backed by s.
func (s *Store) Cars() *CarRepo { return &CarRepo{s: s} }

// Documents returns a DocumentRepository backed by s.
func (s *Store) Documents() *DocumentRepo { return &DocumentRepo{s: s} }

// Contents returns a ContentRepository backed by s.
func (s *Store) Contents() *ContentRepo { return &ContentRepo{s: s} }

func (s *Store) next(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

// detachContent clears contentID on every document except keep. Callers hold the write lock.
func (s *Store) detachContent(contentID, keep int64) {
	for id, row := range s.documents {
		if id != keep && row.contentID != nil && *row.contentID == contentID {
			row.contentID = nil
			s.documents[id] = row
		}
	}
}

// documentFor returns the id of the document holding contentID. Callers hold a lock.
func (s *Store) documentFor(contentID int64) (int64, bool) {
	for id, row := range s.documents {
		if row.contentID != nil && *row.contentID == contentID {
			return id, true
		}
	}
	return 0, false
}

func (s *Store) checkDocumentRefs(row documentRow) error {
	if _, ok := s.cars[row.carID]; !ok {
		return fmt.Errorf("car %d does not exist", row.carID)
	}
	if row.contentID != nil {
		if _, ok := s.contents[*row.contentID]; !ok {
			return fmt.Errorf("content %d does not exist", *row.contentID)
		}
	}
	return nil
}

func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	return model.String(*p)
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
