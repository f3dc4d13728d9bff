package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryObject struct {
	info ObjectInfo
	data []byte
}

// Memory is a process-local Storage for tests and single-node development.
type Memory struct {
	mu   sync.RWMutex
	objs map[string]memoryObject
}

// NewMemory returns an empty in-memory Storage.
func NewMemory() *Memory {
	return &Memory{objs: make(map[string]memoryObject)}
}

var _ Storage = (*Memory)(nil)

func (m *Memory) Put(_ context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return ObjectInfo{}, err
	}
	if opt.Size >= 0 && int64(len(b)) != opt.Size {
		return ObjectInfo{}, fmt.Errorf("put %s: read %d bytes, expected %d", key, len(b), opt.Size)
	}
	info := ObjectInfo{
		Key:          key,
		Size:         int64(len(b)),
		ETag:         uuid.NewString(),
		ContentType:  opt.ContentType,
		LastModified: time.Now().UTC(),
		Metadata:     cloneMetadata(opt.Metadata),
	}
	m.mu.Lock()
	m.objs[key] = memoryObject{info: info, data: b}
	m.mu.Unlock()
	return info, nil
}

func (m *Memory) Get(_ context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	m.mu.RLock()
	obj, ok := m.objs[key]
	m.mu.RUnlock()
	if !ok {
		return nil, ObjectInfo{}, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}
	info := obj.info
	info.Metadata = cloneMetadata(info.Metadata)
	return io.NopCloser(bytes.NewReader(obj.data)), info, nil
}

// Delete removes key. Deleting a missing key succeeds, as on S3.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.objs, key)
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored objects.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objs)
}

func cloneMetadata(md map[string]string) map[string]string {
	if md == nil {
		return nil
	}
	out := make(map[string]string, len(md))
	for k, v := range md {
		out[k] = v
	}
	return out
}
