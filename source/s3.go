// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Client is the subset of *s3.Client used by S3.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3 reads objects from an S3 bucket.
type S3 struct {
	client S3Client
	bucket string
	prefix string
}

// NewS3 creates an S3 source; prefix is prepended to every name.
func NewS3(client S3Client, bucket, prefix string) *S3 {
	return &S3{client: client, bucket: bucket, prefix: prefix}
}

// NewS3FromConfig builds the client from the default AWS configuration chain.
func NewS3FromConfig(ctx context.Context, bucket, prefix string, optFns ...func(*config.LoadOptions) error) (*S3, error) {
	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("source: load aws config: %w", err)
	}

	return NewS3(s3.NewFromConfig(cfg), bucket, prefix), nil
}

func (s *S3) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open fetches the object body. Missing keys map to ErrNotFound.
func (s *S3) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ErrNotFound
		}
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return out.Body, nil
}
