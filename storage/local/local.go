package local

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/MarisolRV/crossover/internal"
	"github.com/MarisolRV/crossover/storage"
)

type localUploader struct {
	dir string
}

// NewLocalUploader stores files under dir, creating it on demand
func NewLocalUploader(dir string) storage.Uploader {
	return &localUploader{dir: dir}
}

func (u *localUploader) Save(ctx context.Context, name string, file storage.Upload) (string, error) {
	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return "", internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to create upload directory %s", u.dir)
	}
	p := filepath.Join(u.dir, name)
	f, err := os.Create(p)
	if err != nil {
		return "", internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to create %s", p)
	}
	defer f.Close()
	if _, err := io.Copy(f, file.Content); err != nil {
		return "", internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to write %s", p)
	}
	return p, nil
}
