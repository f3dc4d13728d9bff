package storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fileuploader/internal/config"
)

func TestMemory(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	info, err := m.Put(ctx, "contents/a", bytes.NewReader([]byte("hello")), PutObjectOptions{
		Size:        5,
		ContentType: "text/plain",
		Metadata:    map[string]string{"k": "v"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size)
	assert.Equal(t, 1, m.Len())

	rc, got, err := m.Get(ctx, "contents/a")
	require.NoError(t, err)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))
	assert.Equal(t, "text/plain", got.ContentType)
	assert.Equal(t, "v", got.Metadata["k"])

	require.NoError(t, m.Delete(ctx, "contents/a"))
	require.NoError(t, m.Delete(ctx, "contents/a"))
	assert.Equal(t, 0, m.Len())

	_, _, err = m.Get(ctx, "contents/a")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestMemory_SizeMismatch(t *testing.T) {
	m := NewMemory()

	_, err := m.Put(context.Background(), "k", bytes.NewReader([]byte("abc")), PutObjectOptions{Size: 2})
	assert.Error(t, err)

	_, err = m.Put(context.Background(), "k", bytes.NewReader([]byte("abc")), PutObjectOptions{Size: -1})
	assert.NoError(t, err)
}

func TestNewMinIO_Validation(t *testing.T) {
	_, err := NewMinIO(minioConfig("", "a", "s", "b"))
	assert.ErrorContains(t, err, "endpoint")

	_, err = NewMinIO(minioConfig("localhost:9000", "", "s", "b"))
	assert.ErrorContains(t, err, "credentials")

	_, err = NewMinIO(minioConfig("localhost:9000", "a", "s", ""))
	assert.ErrorContains(t, err, "bucket")
}

func minioConfig(endpoint, access, secret, bucket string) config.MinIOConfig {
	return config.MinIOConfig{Endpoint: endpoint, AccessKey: access, SecretKey: secret, Bucket: bucket}
}
