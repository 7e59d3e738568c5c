package s3Storage

import (
	"context"
	"io"
	"time"

	"github.com/akolanti/RagWeb/internal/domain/appErrors"
	"github.com/akolanti/RagWeb/internal/domain/ingestModel"
	"github.com/akolanti/RagWeb/internal/metrics"
	"github.com/akolanti/RagWeb/pkg/logger_i"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// API is the slice of the S3 client this package uses.
type API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

type bucketStore struct {
	api    API
	bucket string
	logger *logger_i.Logger
}

// New returns the document bucket. The bucket name is checked by the caller.
func New(api API, bucket string) ingestModel.ObjectStorage {
	return &bucketStore{
		api:    api,
		bucket: bucket,
		logger: logger_i.NewLogger("s3_storage"),
	}
}

func (b *bucketStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (ingestModel.StorageLocation, error) {
	log := b.logger.WithTrace(ctx).With("bucket", b.bucket, "key", key)
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("s3_put", time.Since(start)) }()

	input := &s3.PutObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := b.api.PutObject(ctx, input); err != nil {
		log.Error("PutObject failed", "error", err)
		return ingestModel.StorageLocation{}, appErrors.Remote(appErrors.ServiceStorage, "PutObject", err)
	}
	log.Debug("Object stored", "size", size)
	return ingestModel.StorageLocation{Bucket: b.bucket, Key: key}, nil
}

func (b *bucketStore) CountObjects(ctx context.Context, prefix string, skip func(key string) bool) (int, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("s3_list", time.Since(start)) }()

	paginator := s3.NewListObjectsV2Paginator(b.api, &s3.ListObjectsV2Input{
		Bucket: aws.String(b.bucket),
		Prefix: aws.String(prefix),
	})

	count := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, appErrors.Remote(appErrors.ServiceStorage, "ListObjectsV2", err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if skip != nil && skip(key) {
				continue
			}
			count++
		}
	}
	return count, nil
}
