package fsxs3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/carevo/platform/pkg/fsx"
)

// S3FileSystem stores files as objects under a key prefix in one bucket.
type S3FileSystem struct {
	client *s3.Client
	bucket string
	prefix string
}

func NewS3FileSystem(client *s3.Client, bucket, prefix string) *S3FileSystem {
	return &S3FileSystem{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

func (s *S3FileSystem) key(filePath string) string {
	if s.prefix == "" {
		return filePath
	}
	return fsx.Join(s.prefix, filePath)
}

func (s *S3FileSystem) ReadFile(ctx context.Context, filePath string) ([]byte, error) {
	stream, err := s.ReadFileStream(ctx, filePath)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read s3 object %s: %w", s.key(filePath), err)
	}
	return data, nil
}

func (s *S3FileSystem) ReadFileStream(ctx context.Context, filePath string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(filePath)),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3 object %s: %w", s.key(filePath), err)
	}
	return out.Body, nil
}

func (s *S3FileSystem) WriteFile(ctx context.Context, filePath string, data []byte) error {
	return s.WriteFileStream(ctx, filePath, bytes.NewReader(data))
}

func (s *S3FileSystem) WriteFileStream(ctx context.Context, filePath string, r io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(filePath)),
		Body:   r,
	})
	if err != nil {
		return fmt.Errorf("put s3 object %s: %w", s.key(filePath), err)
	}
	return nil
}

func (s *S3FileSystem) DeleteFile(ctx context.Context, filePath string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(filePath)),
	})
	if err != nil {
		return fmt.Errorf("delete s3 object %s: %w", s.key(filePath), err)
	}
	return nil
}

func (s *S3FileSystem) FileExists(ctx context.Context, filePath string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(filePath)),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("head s3 object %s: %w", s.key(filePath), err)
	}
	return true, nil
}

func (s *S3FileSystem) Join(parts ...string) string {
	return fsx.Join(parts...)
}
