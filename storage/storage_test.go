package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/MarisolRV/crossover/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	calls    int
	lastName string
}

func (f *fakeUploader) Save(ctx context.Context, name string, file Upload) (string, error) {
	f.calls++
	f.lastName = name
	return "https://cdn.example.com/" + name, nil
}

func TestCleanFilename(t *testing.T) {
	for _, test := range []struct {
		in     string
		expect string
	}{
		{"photo.png", "photo.png"},
		{"ok-file_1.PNG", "ok-file_1.PNG"},
		{"café photo.png", "cafe_photo.png"},
		{"niño&juego.jpg", "nino_juego.jpg"},
		{"maquillaje espécial.jpeg", "maquillaje_especial.jpeg"},
		{"weird/../name.png", "weird_.._name.png"},
		{"a b\tc.png", "a_b_c.png"},
	} {
		assert.Equal(t, test.expect, CleanFilename(test.in), "input %q", test.in)
	}
}

func TestObjectName(t *testing.T) {
	first, err := ObjectName("photo.png")
	require.NoError(t, err)
	second, err := ObjectName("photo.png")
	require.NoError(t, err)

	// Identically named uploads must never collide
	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, "_photo.png"))
	assert.True(t, strings.HasSuffix(second, "_photo.png"))

	// 32 hex chars of token before the separator
	token := strings.SplitN(first, "_", 2)[0]
	assert.Len(t, token, 32)
}

func TestIngestRejectsNonImage(t *testing.T) {
	up := &fakeUploader{}

	_, err := Ingest(context.Background(), up, Upload{
		Name:        "notes.txt",
		ContentType: "text/plain",
		Content:     strings.NewReader("not an image"),
	})
	require.Error(t, err)
	assert.Equal(t, internal.ErrorCodeUploadRejected, internal.CodeOf(err))
	assert.Zero(t, up.calls, "rejected uploads must never reach storage")
}

func TestIngestStoresImage(t *testing.T) {
	up := &fakeUploader{}

	url, err := Ingest(context.Background(), up, Upload{
		Name:        "café photo.png",
		ContentType: "image/png",
		Size:        4,
		Content:     strings.NewReader("fake"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, up.calls)
	assert.True(t, strings.HasSuffix(up.lastName, "_cafe_photo.png"))
	assert.Equal(t, "https://cdn.example.com/"+up.lastName, url)
}
