// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
)

// MinIO reads objects from MinIO or any S3-compatible endpoint.
type MinIO struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinIO creates a MinIO source; prefix is prepended to every name.
func NewMinIO(client *minio.Client, bucket, prefix string) *MinIO {
	return &MinIO{client: client, bucket: bucket, prefix: prefix}
}

// Open fetches the object. The request is issued eagerly (Stat) so a missing
// key surfaces here as ErrNotFound rather than on the first Read.
func (m *MinIO) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, path.Join(m.prefix, name), minio.GetObjectOptions{})
	if err != nil {
		return nil, mapMinIOError(err)
	}
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()

		return nil, mapMinIOError(err)
	}

	return obj, nil
}

func mapMinIOError(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NotFound", "NoSuchBucket":
		return ErrNotFound
	}

	return err
}
