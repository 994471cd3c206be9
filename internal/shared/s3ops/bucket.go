package s3ops

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Bucket is the storage surface the commands run against. Every call
// reports the HTTP status of the response; err is only set when no
// response was received.
type Bucket interface {
	Head(ctx context.Context, path string) (int, error)
	Create(ctx context.Context) (int, error)
	Delete(ctx context.Context) (int, error)
	PutObject(ctx context.Context, path string, data []byte) (int, error)
	DeleteObject(ctx context.Context, path string) (int, error)
	GetObject(ctx context.Context, path string) ([]byte, int, error)
}

// API is the subset of *s3.Client used by S3Bucket.
type API interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	DeleteBucket(ctx context.Context, params *s3.DeleteBucketInput, optFns ...func(*s3.Options)) (*s3.DeleteBucketOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

var _ API = (*s3.Client)(nil)

type S3Bucket struct {
	api    API
	name   string
	region string
}

var _ Bucket = (*S3Bucket)(nil)

func NewS3Bucket(api API, name, region string) *S3Bucket {
	return &S3Bucket{api: api, name: name, region: region}
}

func (b *S3Bucket) Name() string {
	return b.name
}

func (b *S3Bucket) Region() string {
	return b.region
}

// objectKey turns a "/"-rooted path into an object key.
func objectKey(path string) string {
	return strings.TrimPrefix(path, "/")
}
