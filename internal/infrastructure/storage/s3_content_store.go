// Package storage keeps payment proof blobs in an S3 compatible bucket.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"rental_billing/internal/domain/entities"
	"rental_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

const referenceScheme = "s3://"

var ErrInvalidReference = errors.New("invalid content reference")

// s3API is the subset of *s3.Client the store needs.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3ContentStore implements IContentStore on a single bucket.
// References have the form s3://<bucket>/<key>.
type S3ContentStore struct {
	client s3API
	bucket string
}

var _ interfaces.IContentStore = (*S3ContentStore)(nil)

func NewS3ContentStore(client s3API, bucket string) *S3ContentStore {
	return &S3ContentStore{client: client, bucket: bucket}
}

func (s *S3ContentStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return "", fmt.Errorf("%w: empty key", ErrInvalidReference)
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}
	return s.reference(key), nil
}

func (s *S3ContentStore) Get(ctx context.Context, reference string) (entities.ContentObject, error) {
	key, err := s.keyOf(reference)
	if err != nil {
		return entities.ContentObject{}, err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return entities.ContentObject{}, interfaces.ErrContentNotFound
		}
		return entities.ContentObject{}, fmt.Errorf("get %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return entities.ContentObject{}, fmt.Errorf("read %s: %w", key, err)
	}
	return entities.ContentObject{
		Reference:   reference,
		ContentType: aws.ToString(out.ContentType),
		Data:        data,
	}, nil
}

// Delete is idempotent: S3 reports success for missing keys.
func (s *S3ContentStore) Delete(ctx context.Context, reference string) error {
	key, err := s.keyOf(reference)
	if err != nil {
		return err
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *S3ContentStore) Exists(ctx context.Context, reference string) (bool, error) {
	key, err := s.keyOf(reference)
	if err != nil {
		return false, err
	}
	_, err = s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("head %s: %w", key, err)
	}
	return true, nil
}

func (s *S3ContentStore) reference(key string) string {
	return referenceScheme + s.bucket + "/" + key
}

func (s *S3ContentStore) keyOf(reference string) (string, error) {
	prefix := referenceScheme + s.bucket + "/"
	if !strings.HasPrefix(reference, prefix) || len(reference) == len(prefix) {
		return "", fmt.Errorf("%w: %q", ErrInvalidReference, reference)
	}
	return strings.TrimPrefix(reference, prefix), nil
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return true
		}
	}
	return false
}
