package uploads

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"mime/multipart"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

func TestStageAndForwardImage(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewStager(NewAferoStore(fs), 0)
	ctx := context.Background()

	st, err := s.Stage(ctx, fileHeader(t, "../../plumbing.png", pngHeader))
	require.NoError(t, err)
	assert.Equal(t, "plumbing.png", st.Filename)
	assert.Equal(t, "image/png", st.MIME)
	assert.Equal(t, int64(len(pngHeader)), st.Size)

	exists, err := afero.Exists(fs, st.Path)
	require.NoError(t, err)
	assert.True(t, exists)

	up, release, err := s.Forward(ctx, st, "image")
	require.NoError(t, err)
	assert.Equal(t, "image", up.Field)
	got, err := io.ReadAll(up.Body)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, got)

	release()
	exists, err = afero.Exists(fs, st.Path)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStageRejectsNonImages(t *testing.T) {
	s := NewStager(NewAferoStore(afero.NewMemMapFs()), 0)
	_, err := s.Stage(context.Background(), fileHeader(t, "notes.png", []byte("just some text")))
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestStageRejectsLargeFiles(t *testing.T) {
	s := NewStager(NewAferoStore(afero.NewMemMapFs()), 16)
	_, err := s.Stage(context.Background(), fileHeader(t, "big.png", append(bytes.Clone(pngHeader), make([]byte, 64)...)))
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Equal(t, "16 B", s.Limit())
}

// unreadable stores files but refuses to open them again.
type unreadable struct {
	*AferoStore
}

func (unreadable) Open(context.Context, string) (io.ReadCloser, error) {
	return nil, errors.New("disk gone")
}

func TestForwardFailureRemovesStagedFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewStager(unreadable{NewAferoStore(fs)}, 0)
	ctx := context.Background()

	st, err := s.Stage(ctx, fileHeader(t, "plumbing.png", pngHeader))
	require.NoError(t, err)

	_, release, err := s.Forward(ctx, st, "image")
	require.Error(t, err)
	release()

	exists, err := afero.Exists(fs, st.Path)
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = afero.DirExists(fs, filepath.Dir(st.Path))
	require.NoError(t, err)
	assert.False(t, exists)
}
