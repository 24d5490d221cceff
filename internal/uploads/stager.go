package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/nfrund/hireboard/internal/apiclient"
)

// DefaultMaxSize bounds a single image.
const DefaultMaxSize = 5 << 20

var (
	// ErrNotImage is returned for files whose content is not an image.
	ErrNotImage = errors.New("file is not an image")
	// ErrTooLarge is returned for files above the size limit.
	ErrTooLarge = errors.New("file is too large")
)

// Staged is an image held on the store until it has been forwarded.
type Staged struct {
	Path     string
	Filename string
	MIME     string
	Size     int64
}

// Stager validates and stages uploaded images.
type Stager struct {
	store   Store
	maxSize int64
}

func NewStager(store Store, maxSize int64) *Stager {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Stager{store: store, maxSize: maxSize}
}

// Limit describes the size limit for form hints, e.g. "5.2 MB".
func (s *Stager) Limit() string {
	return humanize.Bytes(uint64(s.maxSize))
}

// Stage sniffs fh and copies it to the store. Only images within the size
// limit are accepted.
func (s *Stager) Stage(ctx context.Context, fh *multipart.FileHeader) (Staged, error) {
	if fh.Size > s.maxSize {
		return Staged{}, fmt.Errorf("%w: %s exceeds %s", ErrTooLarge, humanize.Bytes(uint64(fh.Size)), s.Limit())
	}
	src, err := fh.Open()
	if err != nil {
		return Staged{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	mt, err := mimetype.DetectReader(src)
	if err != nil {
		return Staged{}, fmt.Errorf("detect upload type: %w", err)
	}
	if !strings.HasPrefix(mt.String(), "image/") {
		return Staged{}, fmt.Errorf("%w: detected %s", ErrNotImage, mt.String())
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return Staged{}, fmt.Errorf("rewind upload: %w", err)
	}

	name := filepath.Base(fh.Filename)
	if ext := filepath.Ext(name); ext == "" {
		name += mt.Extension()
	}
	path := filepath.Join(uuid.NewString(), name)
	n, err := s.store.Save(ctx, path, io.LimitReader(src, s.maxSize+1))
	if err != nil {
		return Staged{}, fmt.Errorf("stage upload: %w", err)
	}
	if n > s.maxSize {
		_ = s.store.Delete(ctx, path)
		return Staged{}, fmt.Errorf("%w: more than %s", ErrTooLarge, s.Limit())
	}
	return Staged{Path: path, Filename: name, MIME: mt.String(), Size: n}, nil
}

// Forward opens st as the multipart part field of an API request. The
// returned release closes and removes the staged file and must be called
// once the request is done. If st cannot be opened it is removed right away.
func (s *Stager) Forward(ctx context.Context, st Staged, field string) (apiclient.Upload, func(), error) {
	rc, err := s.store.Open(ctx, st.Path)
	if err != nil {
		s.discard(ctx, st)
		return apiclient.Upload{}, func() {}, fmt.Errorf("open staged %s: %w", st.Path, err)
	}
	release := func() {
		_ = rc.Close()
		s.discard(ctx, st)
	}
	return apiclient.Upload{Field: field, Filename: st.Filename, Body: rc}, release, nil
}

// discard removes the staged file and its directory.
func (s *Stager) discard(ctx context.Context, st Staged) {
	ctx = context.WithoutCancel(ctx)
	_ = s.store.Delete(ctx, st.Path)
	_ = s.store.Delete(ctx, filepath.Dir(st.Path))
}
