// Package cmdenv carries the process-level collaborators of a command so
// tests can substitute them.
package cmdenv

import (
	"context"
	"io"
	"os"

	"s3-cloud/internal/shared/config"
	"s3-cloud/internal/shared/credstore"
	"s3-cloud/internal/shared/s3client"
	"s3-cloud/internal/shared/s3ops"

	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
)

// Opener builds the handle for one bucket.
type Opener func(ctx context.Context, bucket string, creds credstore.Credentials, opts config.Options, l *log.Logger) (s3ops.Bucket, error)

// PromptFunc asks the user for a key pair, starting from the current values.
type PromptFunc func(in io.Reader, out io.Writer, accessKey, secretKey string) (string, string, error)

type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Nil fields fall back to the real process environment.
	LookupEnv func(string) (string, bool)
	HomeDir   func() (string, error)
	Open      Opener
	Prompt    PromptFunc
}

func Default() *Env {
	return &Env{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		LookupEnv: os.LookupEnv,
		HomeDir:   homedir.Dir,
		Open:      OpenS3,
	}
}

func (e *Env) Lookup(key string) (string, bool) {
	if e.LookupEnv == nil {
		return os.LookupEnv(key)
	}
	return e.LookupEnv(key)
}

func (e *Env) Home() (string, error) {
	if e.HomeDir == nil {
		return homedir.Dir()
	}
	return e.HomeDir()
}

func (e *Env) OpenBucket(ctx context.Context, bucket string, creds credstore.Credentials, opts config.Options, l *log.Logger) (s3ops.Bucket, error) {
	if e.Open == nil {
		return OpenS3(ctx, bucket, creds, opts, l)
	}
	return e.Open(ctx, bucket, creds, opts, l)
}

// OpenS3 opens bucket on the S3 endpoint described by opts using path-style
// addressing.
func OpenS3(ctx context.Context, bucket string, creds credstore.Credentials, opts config.Options, l *log.Logger) (s3ops.Bucket, error) {
	clientOpts := append(s3client.DefaultOptions(), s3client.WithLogger(l))
	client, err := s3client.New(ctx, opts, creds, clientOpts...)
	if err != nil {
		return nil, err
	}
	b := s3ops.NewS3Bucket(client, bucket, opts.Region)
	l.WithFields(log.Fields{
		"bucket":   b.Name(),
		"region":   b.Region(),
		"endpoint": opts.Endpoint,
	}).Debug("bucket handle opened")
	return b, nil
}
