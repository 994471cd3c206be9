package s3uri

import (
	"fmt"
	"strings"
)

const scheme = "s3://"

// IsURI reports whether s uses the s3:// scheme.
func IsURI(s string) bool {
	return strings.HasPrefix(s, scheme)
}

// Parse extracts bucket and key from an S3 URI (s3://bucket or
// s3://bucket/key/path). The key is empty when the URI names only a bucket.
func Parse(uri string) (bucket, key string, err error) {
	if !IsURI(uri) {
		return "", "", fmt.Errorf("invalid S3 URI %q: must start with s3://", uri)
	}
	rest := strings.TrimPrefix(uri, scheme)
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("invalid S3 URI %q: bucket name is empty", uri)
	}
	return bucket, key, nil
}
