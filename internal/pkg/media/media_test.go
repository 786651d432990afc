package media

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	failOn  string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: make(map[string][]byte)}
}

func (m *memoryStore) Put(_ context.Context, key string, body io.Reader, _ string) (Object, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return Object{}, err
	}
	if m.failOn != "" && string(data) == m.failOn {
		return Object{}, errors.New("host unavailable")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return Object{PublicID: key, URL: "https://cdn.test/" + key}, nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func file(name, contentType, body string) File {
	return File{
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(body)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewBufferString(body)), nil
		},
	}
}

func TestUploader_UploadAllKeepsOrder(t *testing.T) {
	store := newMemoryStore()
	u := NewUploader(store, "properties")

	files := []File{
		file("a.jpg", "image/jpeg", "a"),
		file("b.png", "image/png", "b"),
		file("c.webp", "image/webp; charset=binary", "c"),
	}

	objects, err := u.UploadAll(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, objects, 3)

	assert.True(t, strings.HasPrefix(objects[0].PublicID, "properties/"))
	assert.True(t, strings.HasSuffix(objects[0].PublicID, ".jpg"))
	assert.True(t, strings.HasSuffix(objects[1].PublicID, ".png"))
	assert.True(t, strings.HasSuffix(objects[2].PublicID, ".webp"))
	assert.Equal(t, []byte("b"), store.objects[objects[1].PublicID])
}

func TestUploader_PartialFailureLeavesUploadedFiles(t *testing.T) {
	store := newMemoryStore()
	store.failOn = "bad"
	u := NewUploader(store, "properties")

	_, err := u.UploadAll(context.Background(), []File{
		file("a.jpg", "image/jpeg", "good"),
		file("b.jpg", "image/jpeg", "bad"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b.jpg")
	assert.Len(t, store.objects, 1)
}

func TestLimits_Validate(t *testing.T) {
	limits := Limits{MaxFiles: 2, MaxBytes: 4}

	assert.NoError(t, limits.Validate([]File{file("a.jpg", "image/jpeg", "abcd")}))
	assert.Error(t, limits.Validate(nil))
	assert.Error(t, limits.Validate([]File{file("a.pdf", "application/pdf", "a")}))
	assert.Error(t, limits.Validate([]File{file("a.jpg", "image/jpeg", "abcde")}))
	assert.Error(t, limits.Validate([]File{
		file("a.jpg", "image/jpeg", "a"),
		file("b.jpg", "image/jpeg", "b"),
		file("c.jpg", "image/jpeg", "c"),
	}))
}

func TestDisabledStore(t *testing.T) {
	_, err := Disabled().Put(context.Background(), "k", nil, "image/png")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, Disabled().Delete(context.Background(), "k"), ErrNotConfigured)
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/properties/x.jpg",
		PublicURL(S3Config{PublicBaseURL: "https://cdn.example.com/"}, "properties/x.jpg"))
	assert.Equal(t, "http://localhost:9000/listings/properties/x.jpg",
		PublicURL(S3Config{Endpoint: "http://localhost:9000", Bucket: "listings"}, "properties/x.jpg"))
	assert.Equal(t, "https://listings.s3.ap-south-1.amazonaws.com/properties/x.jpg",
		PublicURL(S3Config{Bucket: "listings", Region: "ap-south-1"}, "properties/x.jpg"))
}

const pngHeader = "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"

func TestSniff(t *testing.T) {
	limits := Limits{MaxFiles: 5, MaxBytes: 1 << 20}

	t.Run("detects the real type", func(t *testing.T) {
		f, err := Sniff(file("photo.jpg", "image/jpeg", pngHeader+"rest"))
		require.NoError(t, err)
		assert.Equal(t, "image/png", f.ContentType)
		assert.NoError(t, limits.Validate([]File{f}))
	})

	t.Run("declared image type is not trusted", func(t *testing.T) {
		f, err := Sniff(file("evil.png", "image/png", "<html><script>alert(1)</script></html>"))
		require.NoError(t, err)
		assert.NotEqual(t, "image/png", normalizeType(f.ContentType))
		assert.Error(t, limits.Validate([]File{f}))
	})

	t.Run("empty file", func(t *testing.T) {
		f, err := Sniff(file("empty.gif", "image/gif", ""))
		require.NoError(t, err)
		assert.Error(t, limits.Validate([]File{f}))
	})

	t.Run("open failure", func(t *testing.T) {
		_, err := Sniff(File{Name: "x.png", Open: func() (io.ReadCloser, error) {
			return nil, errors.New("gone")
		}})
		assert.Error(t, err)
	})
}
