package s3

import (
	"context"
	"fmt"
	"path"

	"github.com/MarisolRV/crossover/internal"
	"github.com/MarisolRV/crossover/storage"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// folder is the logical prefix every image lands under inside the bucket
const folder = "images"

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Secure    bool
}

type s3Uploader struct {
	client *minio.Client
	bucket string
}

// NewS3Uploader connects to an S3 compatible object store. The client is
// built once at startup and shared across requests
func NewS3Uploader(cfg Config) (storage.Uploader, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, err
	}
	return &s3Uploader{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

func (u *s3Uploader) Save(ctx context.Context, name string, file storage.Upload) (string, error) {
	object := path.Join(folder, name)
	_, err := u.client.PutObject(ctx, u.bucket, object, file.Content, file.Size, minio.PutObjectOptions{
		ContentType: file.ContentType,
	})
	if err != nil {
		return "", internal.WrapErrorf(err, internal.ErrorCodeUnavailable, "Failed to upload %s", name)
	}
	return fmt.Sprintf("%s/%s/%s", u.client.EndpointURL(), u.bucket, object), nil
}
