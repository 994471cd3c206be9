package s3ops

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go/middleware"
)

func (b *S3Bucket) PutObject(ctx context.Context, path string, data []byte) (int, error) {
	resp, err := b.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(b.name),
		Key:           aws.String(objectKey(path)),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(getContentType(path)),
	})
	var md middleware.Metadata
	if resp != nil {
		md = resp.ResultMetadata
	}
	return settle(md, err, http.StatusOK, "failed to upload object")
}

func (b *S3Bucket) DeleteObject(ctx context.Context, path string) (int, error) {
	resp, err := b.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(objectKey(path)),
	})
	var md middleware.Metadata
	if resp != nil {
		md = resp.ResultMetadata
	}
	return settle(md, err, http.StatusNoContent, "failed to delete object")
}

// GetObject reads the whole object into memory.
func (b *S3Bucket) GetObject(ctx context.Context, path string) ([]byte, int, error) {
	resp, err := b.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(objectKey(path)),
	})
	if err != nil {
		status, err := settle(middleware.Metadata{}, err, 0, "failed to get object")
		return nil, status, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read object: %w", err)
	}

	return data, resultStatus(resp.ResultMetadata, http.StatusOK), nil
}

func getContentType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".html", ".htm":
		return "text/html"
	case ".css":
		return "text/css"
	case ".js":
		return "application/javascript"
	case ".json":
		return "application/json"
	case ".xml":
		return "application/xml"
	case ".txt", ".md":
		return "text/plain"
	case ".csv":
		return "text/csv"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".svg":
		return "image/svg+xml"
	case ".pdf":
		return "application/pdf"
	case ".zip":
		return "application/zip"
	case ".tar":
		return "application/x-tar"
	case ".gz", ".tgz":
		return "application/gzip"
	default:
		return "application/octet-stream"
	}
}
