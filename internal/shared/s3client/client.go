package s3client

import (
	"context"
	"fmt"

	"s3-cloud/internal/shared/config"
	"s3-cloud/internal/shared/credstore"
	"s3-cloud/internal/shared/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	log "github.com/sirupsen/logrus"
)

type ClientOption func(*s3.Options)

func WithPathStyle(enabled bool) ClientOption {
	return func(o *s3.Options) {
		o.UsePathStyle = enabled
	}
}

// WithMaxAttempts bounds the number of round trips per call; 1 disables
// the SDK retryer.
func WithMaxAttempts(n int) ClientOption {
	return func(o *s3.Options) {
		o.RetryMaxAttempts = n
	}
}

// WithLogger routes SDK request logging to l.
func WithLogger(l *log.Logger) ClientOption {
	return func(o *s3.Options) {
		o.Logger = logger.SDKLogger(l)
		if l.IsLevelEnabled(log.DebugLevel) {
			o.ClientLogMode = aws.LogRetries | aws.LogRequest | aws.LogResponse
		}
	}
}

// DefaultOptions are applied to every client: path-style addressing and a
// single attempt per call.
func DefaultOptions() []ClientOption {
	return []ClientOption{WithPathStyle(true), WithMaxAttempts(1)}
}

func New(ctx context.Context, opts config.Options, creds credstore.Credentials, clientOpts ...ClientOption) (*s3.Client, error) {
	awsCfg, err := config.Load(ctx, opts, creds)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		for _, opt := range clientOpts {
			opt(o)
		}
	}), nil
}
