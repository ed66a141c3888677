package storage

import (
	"context"
	"encoding/hex"
	"io"
	"regexp"
	"strings"

	"github.com/MarisolRV/crossover/internal"
	"github.com/gofrs/uuid"
	"github.com/gosimple/unidecode"
)

// Upload is one inbound file with its declared content type. The declared
// type is what gets checked; bytes are passed through untouched
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Uploader stores an upload under the given object name and returns the
// location it can be fetched from, either a public URL or a local path
type Uploader interface {
	Save(ctx context.Context, name string, file Upload) (string, error)
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// CleanFilename folds accented characters to their closest plain ASCII form
// and replaces anything outside letters, digits, dot, hyphen and underscore
func CleanFilename(name string) string {
	return unsafeChars.ReplaceAllString(unidecode.Unidecode(name), "_")
}

// ObjectName prefixes the cleaned original filename with a random token so
// two uploads of identically named files never collide
func ObjectName(original string) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to generate object name")
	}
	return hex.EncodeToString(id.Bytes()) + "_" + CleanFilename(original), nil
}

// Ingest validates the upload and hands it to the uploader. Files whose
// declared content type is not an image are rejected before any bytes move
func Ingest(ctx context.Context, up Uploader, file Upload) (string, error) {
	if !strings.HasPrefix(file.ContentType, "image/") {
		return "", internal.NewErrorf(internal.ErrorCodeUploadRejected, "%v", internal.ErrNotAnImage)
	}
	name, err := ObjectName(file.Name)
	if err != nil {
		return "", err
	}
	return up.Save(ctx, name, file)
}
