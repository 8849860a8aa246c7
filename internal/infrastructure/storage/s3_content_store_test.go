package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"rental_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

type object struct {
	data        []byte
	contentType string
}

type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]object
	failGet error
}

func newFakeS3() *fakeS3 { return &fakeS3{objects: map[string]object{}} }

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = object{data: data, contentType: aws.ToString(in.ContentType)}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.failGet != nil {
		return nil, f.failGet
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(o.data)), ContentType: aws.String(o.contentType)}, nil
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]; !ok {
		return nil, &smithy.GenericAPIError{Code: "NotFound", Message: "Not Found"}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3ContentStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	store := NewS3ContentStore(fake, "proofs")

	ref, err := store.Put(ctx, "/payment-proofs/p-1/a.jpg", []byte{0xff, 0xd8, 0xff}, "image/jpeg")
	if err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}
	if ref != "s3://proofs/payment-proofs/p-1/a.jpg" {
		t.Fatalf("unexpected reference: %s", ref)
	}

	exists, err := store.Exists(ctx, ref)
	if err != nil || !exists {
		t.Fatalf("expected object to exist, got %v %v", exists, err)
	}

	obj, err := store.Get(ctx, ref)
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if obj.ContentType != "image/jpeg" || len(obj.Data) != 3 || obj.Reference != ref {
		t.Fatalf("unexpected object: %+v", obj)
	}

	if err := store.Delete(ctx, ref); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	exists, err = store.Exists(ctx, ref)
	if err != nil || exists {
		t.Fatalf("expected object to be gone, got %v %v", exists, err)
	}
	if _, err := store.Get(ctx, ref); !errors.Is(err, interfaces.ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound, got %v", err)
	}
}

func TestS3ContentStore_References(t *testing.T) {
	store := NewS3ContentStore(newFakeS3(), "proofs")
	for _, ref := range []string{"", "proofs/a.jpg", "s3://other/a.jpg", "s3://proofs/"} {
		if _, err := store.Exists(context.Background(), ref); !errors.Is(err, ErrInvalidReference) {
			t.Fatalf("%q: expected ErrInvalidReference, got %v", ref, err)
		}
	}
	if _, err := store.Put(context.Background(), "/", nil, "image/jpeg"); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference for empty key, got %v", err)
	}
}

func TestS3ContentStore_GetError(t *testing.T) {
	fake := newFakeS3()
	fake.failGet = errors.New("timeout")
	store := NewS3ContentStore(fake, "proofs")

	_, err := store.Get(context.Background(), "s3://proofs/a.jpg")
	if err == nil || errors.Is(err, interfaces.ErrContentNotFound) {
		t.Fatalf("expected a transport error, got %v", err)
	}
}
