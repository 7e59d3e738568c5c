package s3Storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/akolanti/RagWeb/internal/domain/appErrors"
	"github.com/akolanti/RagWeb/internal/domain/ingestModel"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type mockS3 struct {
	OnPut  func(ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error)
	pages  []*s3.ListObjectsV2Output
	listed int
}

func (m *mockS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	return m.OnPut(ctx, in)
}

func (m *mockS3) ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	if m.listed >= len(m.pages) {
		return nil, errors.New("no more pages")
	}
	page := m.pages[m.listed]
	m.listed++
	return page, nil
}

func TestPut(t *testing.T) {
	var got *s3.PutObjectInput
	var body string
	store := New(&mockS3{OnPut: func(ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		got = in
		b, _ := io.ReadAll(in.Body)
		body = string(b)
		return &s3.PutObjectOutput{}, nil
	}}, "docs-bucket")

	loc, err := store.Put(context.Background(), "documents/notes.txt", strings.NewReader("hello"), 5, "text/plain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc != (ingestModel.StorageLocation{Bucket: "docs-bucket", Key: "documents/notes.txt"}) {
		t.Errorf("unexpected location %+v", loc)
	}
	if aws.ToString(got.Bucket) != "docs-bucket" || aws.ToString(got.Key) != "documents/notes.txt" {
		t.Errorf("unexpected input %+v", got)
	}
	if aws.ToString(got.ContentType) != "text/plain" || aws.ToInt64(got.ContentLength) != 5 || body != "hello" {
		t.Errorf("unexpected payload %q %+v", body, got)
	}
}

func TestPut_Failure(t *testing.T) {
	store := New(&mockS3{OnPut: func(ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return nil, errors.New("AccessDenied")
	}}, "docs-bucket")

	_, err := store.Put(context.Background(), "documents/a.txt", strings.NewReader(""), 0, "")
	var remoteErr *appErrors.RemoteServiceError
	if !errors.As(err, &remoteErr) || remoteErr.Service != appErrors.ServiceStorage {
		t.Fatalf("expected storage RemoteServiceError, got %v", err)
	}
}

func TestCountObjects(t *testing.T) {
	api := &mockS3{pages: []*s3.ListObjectsV2Output{
		{
			Contents:              []types.Object{{Key: aws.String("documents/")}, {Key: aws.String("documents/a.txt")}},
			IsTruncated:           aws.Bool(true),
			NextContinuationToken: aws.String("next"),
		},
		{
			Contents:    []types.Object{{Key: aws.String("documents/b.pdf")}, {Key: aws.String("documents/b.pdf.metadata.json")}},
			IsTruncated: aws.Bool(false),
		},
	}}
	store := New(api, "docs-bucket")

	n, err := store.CountObjects(context.Background(), "documents/", func(key string) bool {
		return !ingestModel.IsDocumentKey(key)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("count got %d, want 2", n)
	}
	if api.listed != 2 {
		t.Errorf("expected both pages to be listed, got %d", api.listed)
	}
}
