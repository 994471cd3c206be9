package s3ops

import (
	"context"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go/middleware"
)

// Head probes the bucket itself for "/" and an object otherwise. A bucket
// owned in another region answers 301.
func (b *S3Bucket) Head(ctx context.Context, path string) (int, error) {
	var md middleware.Metadata
	var err error

	if key := objectKey(path); key == "" {
		var resp *s3.HeadBucketOutput
		resp, err = b.api.HeadBucket(ctx, &s3.HeadBucketInput{
			Bucket: aws.String(b.name),
		})
		if resp != nil {
			md = resp.ResultMetadata
		}
	} else {
		var resp *s3.HeadObjectOutput
		resp, err = b.api.HeadObject(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(b.name),
			Key:    aws.String(key),
		})
		if resp != nil {
			md = resp.ResultMetadata
		}
	}

	return settle(md, err, http.StatusOK, "failed to head "+path)
}

func (b *S3Bucket) Create(ctx context.Context) (int, error) {
	input := &s3.CreateBucketInput{
		Bucket: aws.String(b.name),
	}
	// us-east-1 rejects an explicit location constraint.
	if b.region != "" && b.region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(b.region),
		}
	}

	resp, err := b.api.CreateBucket(ctx, input)
	var md middleware.Metadata
	if resp != nil {
		md = resp.ResultMetadata
	}
	return settle(md, err, http.StatusOK, "failed to create bucket")
}

func (b *S3Bucket) Delete(ctx context.Context) (int, error) {
	resp, err := b.api.DeleteBucket(ctx, &s3.DeleteBucketInput{
		Bucket: aws.String(b.name),
	})
	var md middleware.Metadata
	if resp != nil {
		md = resp.ResultMetadata
	}
	return settle(md, err, http.StatusNoContent, "failed to delete bucket")
}
