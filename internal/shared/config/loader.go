package config

import (
	"context"

	"s3-cloud/internal/shared/credstore"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// Load builds an SDK configuration signing with creds. Credentials from the
// shared AWS files or the environment are never consulted.
func Load(ctx context.Context, opts Options, creds credstore.Credentials) (aws.Config, error) {
	cfgOpts := []func(*config.LoadOptions) error{
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(creds.AccessKey, creds.SecretKey, ""),
		),
	}

	if opts.Region != "" {
		cfgOpts = append(cfgOpts, config.WithRegion(opts.Region))
	}

	if opts.Endpoint != "" {
		cfgOpts = append(cfgOpts, config.WithBaseEndpoint(opts.Endpoint))
	}

	return config.LoadDefaultConfig(ctx, cfgOpts...)
}
