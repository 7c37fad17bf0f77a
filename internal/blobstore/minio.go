package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// MinioStore keeps blobs as objects in one minio (S3-compatible) bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
	logger *zap.Logger
}

// NewMinioClient creates a minio client for endpoint (host:port) with static credentials.
func NewMinioClient(endpoint, accessKey, secretKey string, useSSL bool) (*minio.Client, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio client: %w", err)
	}
	return client, nil
}

// NewMinioStore stores blobs in bucket.
func NewMinioStore(client *minio.Client, bucket string, logger *zap.Logger) *MinioStore {
	return &MinioStore{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// ListNames lists every object key in the bucket.
func (m *MinioStore) ListNames(ctx context.Context) ([]string, error) {
	return collectNames(ctx, m.bucket, func(ctx context.Context) <-chan minio.ObjectInfo {
		return m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{Recursive: true})
	})
}

// collectNames drains a listing. Stopping early on an error cancels the
// listing so its producer goroutine exits.
func collectNames(ctx context.Context, bucket string, list func(context.Context) <-chan minio.ObjectInfo) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var names []string
	for obj := range list(ctx) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", bucket, obj.Err)
		}
		names = append(names, obj.Key)
	}
	return names, nil
}

// Fetch downloads the named object.
func (m *MinioStore) Fetch(ctx context.Context, name string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to read object %s: %w", name, err)
	}
	return data, nil
}

// Store uploads data under name with a content type guessed from its extension.
func (m *MinioStore) Store(ctx context.Context, name string, data []byte) error {
	opts := minio.PutObjectOptions{ContentType: mime.TypeByExtension(path.Ext(name))}
	if opts.ContentType == "" {
		opts.ContentType = "application/octet-stream"
	}

	_, err := m.client.PutObject(ctx, m.bucket, name, bytes.NewReader(data), int64(len(data)), opts)
	if err != nil {
		return fmt.Errorf("failed to put object %s in bucket %s: %w", name, m.bucket, err)
	}

	m.logger.Info("Blob stored",
		zap.String("bucket", m.bucket),
		zap.String("name", name),
		zap.Int("bytes", len(data)))
	return nil
}
