package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"

	"github.com/spf13/afero"

	"github.com/xiebiao/literary-depot/internal/domain/book"
	apperrors "github.com/xiebiao/literary-depot/pkg/errors"
)

// CoverStore keeps uploaded cover images in a flat directory.
// It writes through an afero.Fs rooted at that directory, so names can never
// resolve outside it and tests can run on an in-memory filesystem.
type CoverStore struct {
	fs afero.Fs
}

// NewCoverStore roots the store at dir on the host filesystem, creating the
// directory if it does not exist yet.
func NewCoverStore(dir string) (*CoverStore, error) {
	return NewCoverStoreFs(afero.NewOsFs(), dir)
}

// NewCoverStoreFs is NewCoverStore over an arbitrary base filesystem.
func NewCoverStoreFs(base afero.Fs, dir string) (*CoverStore, error) {
	if err := base.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &CoverStore{fs: afero.NewBasePathFs(base, dir)}, nil
}

var _ book.CoverStorage = (*CoverStore)(nil)

// Save writes content to name, replacing any existing file.
// Concurrent saves of one name are not serialized; the last writer wins.
func (s *CoverStore) Save(ctx context.Context, name string, content io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	f, err := s.fs.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, apperrors.WrapCode(err, apperrors.ErrCodeStorageError, "open cover file failed")
	}

	n, err := io.Copy(f, content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, apperrors.WrapCode(err, apperrors.ErrCodeStorageError, "write cover file failed")
	}
	return n, nil
}

// FileSystem serves stored covers over HTTP. Directory listings are refused.
func (s *CoverStore) FileSystem() http.FileSystem {
	return filesOnly{afero.NewHttpFs(s.fs).Dir("/")}
}

type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(path.Clean("/" + name))
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, os.ErrNotExist
	}
	return file, nil
}
