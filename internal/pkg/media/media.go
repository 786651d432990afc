// Package media stores listing images on an S3-compatible media host.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/light-bringer/estate-service/internal/pkg/apperr"
)

// ErrNotConfigured is returned by the disabled store.
var ErrNotConfigured = errors.New("media host is not configured")

// Object identifies a stored file on the media host.
type Object struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

// Store is the media host.
type Store interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) (Object, error)
	Delete(ctx context.Context, publicID string) error
}

// File is one upload candidate.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Limits bounds a single upload request.
type Limits struct {
	MaxFiles int
	MaxBytes int64
}

// Validate checks count, size and content type of files.
func (l Limits) Validate(files []File) error {
	v := apperr.NewValidation()
	if len(files) == 0 {
		v.Add("images", "at least one image is required")
	}
	if l.MaxFiles > 0 && len(files) > l.MaxFiles {
		v.Add("images", fmt.Sprintf("at most %d images per upload", l.MaxFiles))
	}
	for i, f := range files {
		field := fmt.Sprintf("images[%d]", i)
		if _, ok := allowedTypes[normalizeType(f.ContentType)]; !ok {
			v.Add(field, "only jpeg, png, webp and gif images are allowed")
		}
		if l.MaxBytes > 0 && f.Size > l.MaxBytes {
			v.Add(field, fmt.Sprintf("image exceeds %d bytes", l.MaxBytes))
		}
	}
	return v.OrNil()
}

// sniffLen is the prefix length http.DetectContentType looks at.
const sniffLen = 512

// Sniff replaces the declared content type of f with the one detected from
// its first bytes.
func Sniff(f File) (File, error) {
	body, err := f.Open()
	if err != nil {
		return f, fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer body.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(body, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return f, fmt.Errorf("read %s: %w", f.Name, err)
	}
	f.ContentType = http.DetectContentType(head[:n])
	return f, nil
}

func normalizeType(contentType string) string {
	ct, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(ct))
}

// Uploader pushes files to a Store under a folder.
type Uploader struct {
	store       Store
	folder      string
	parallelism int
}

// NewUploader creates an Uploader.
func NewUploader(store Store, folder string) *Uploader {
	return &Uploader{store: store, folder: folder, parallelism: 4}
}

// Store returns the underlying media host.
func (u *Uploader) Store() Store { return u.store }

// UploadAll uploads files concurrently and returns objects in input order.
// On failure the first error is returned; files that already reached the
// host stay there.
func (u *Uploader) UploadAll(ctx context.Context, files []File) ([]Object, error) {
	objects := make([]Object, len(files))

	var g errgroup.Group
	g.SetLimit(u.parallelism)
	for i, f := range files {
		g.Go(func() error {
			obj, err := u.upload(ctx, f)
			if err != nil {
				return fmt.Errorf("upload %s: %w", f.Name, err)
			}
			objects[i] = obj
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return objects, nil
}

func (u *Uploader) upload(ctx context.Context, f File) (Object, error) {
	body, err := f.Open()
	if err != nil {
		return Object{}, err
	}
	defer body.Close()

	contentType := normalizeType(f.ContentType)
	key := path.Join(u.folder, uuid.New().String()+allowedTypes[contentType])
	return u.store.Put(ctx, key, body, contentType)
}

// InFolder reports whether publicID was issued under the uploader's folder.
func (u *Uploader) InFolder(publicID string) bool {
	clean := path.Clean(publicID)
	return clean == publicID && strings.HasPrefix(clean, u.folder+"/")
}

// Delete removes an object from the host.
func (u *Uploader) Delete(ctx context.Context, publicID string) error {
	return u.store.Delete(ctx, publicID)
}

type disabledStore struct{}

// Disabled returns a Store that rejects every call with ErrNotConfigured.
func Disabled() Store { return disabledStore{} }

func (disabledStore) Put(context.Context, string, io.Reader, string) (Object, error) {
	return Object{}, ErrNotConfigured
}

func (disabledStore) Delete(context.Context, string) error { return ErrNotConfigured }
