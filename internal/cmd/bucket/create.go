package bucket

import (
	"context"
	"fmt"
	"net/http"

	"s3-cloud/internal/shared/apperr"
	"s3-cloud/internal/shared/cmdenv"
	"s3-cloud/internal/shared/s3ops"
	"s3-cloud/internal/shared/ui"

	log "github.com/sirupsen/logrus"
)

const (
	msgBucketCreated = "Bucket created successfully!"
	msgBucketExists  = "Bucket already exists."
	msgNameTaken     = "Bucket name already taken."
	msgUnknownError  = "Unknown error"
)

// createBucket probes the bucket and only creates it when the probe says it
// does not exist.
func createBucket(ctx context.Context, b s3ops.Bucket, req request, env *cmdenv.Env, l log.FieldLogger) error {
	status, err := b.Head(ctx, "/")
	if err != nil {
		return apperr.Remote("failed to probe bucket", err)
	}
	l.WithField("status", status).Debug("bucket probed")

	switch status {
	case http.StatusNotFound:
		created, err := b.Create(ctx)
		if err != nil {
			return apperr.Remote("failed to create bucket", err)
		}
		l.WithField("status", created).Debug("bucket create answered")
		if created != http.StatusOK {
			return apperr.UnexpectedStatus(fmt.Sprintf("Failed to create bucket (status %d).", created), created)
		}
		ui.Success(env.Stdout, msgBucketCreated)
		return nil
	case http.StatusOK:
		ui.Warning(env.Stdout, msgBucketExists)
		return nil
	case http.StatusMovedPermanently:
		return apperr.UnexpectedStatus(msgNameTaken, status)
	default:
		return apperr.UnexpectedStatus(fmt.Sprintf("%s (status %d).", msgUnknownError, status), status)
	}
}
