// Package uploads stages images submitted through the console's forms
// before they are forwarded to the marketplace API.
package uploads

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Store is the filesystem staged files live on.
type Store interface {
	Save(ctx context.Context, path string, r io.Reader) (int64, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}

// AferoStore keeps staged files on an afero filesystem: the OS under a base
// directory in production, memory in tests.
type AferoStore struct {
	fs afero.Fs
}

func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs}
}

// NewDiskStore stages files below dir.
func NewDiskStore(dir string) *AferoStore {
	return NewAferoStore(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

func (s *AferoStore) Save(_ context.Context, path string, r io.Reader) (int64, error) {
	if err := s.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, err
	}
	f, err := s.fs.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return io.Copy(f, r)
}

func (s *AferoStore) Open(_ context.Context, path string) (io.ReadCloser, error) {
	return s.fs.OpenFile(path, os.O_RDONLY, 0)
}

func (s *AferoStore) Delete(_ context.Context, path string) error {
	return s.fs.Remove(path)
}
