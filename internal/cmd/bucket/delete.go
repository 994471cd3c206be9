package bucket

import (
	"context"
	"net/http"

	"s3-cloud/internal/shared/apperr"
	"s3-cloud/internal/shared/cmdenv"
	"s3-cloud/internal/shared/s3ops"
	"s3-cloud/internal/shared/ui"

	log "github.com/sirupsen/logrus"
)

const (
	msgBucketDeleted      = "Bucket deleted successfully."
	msgBucketDeleteFailed = "Possible error deleting the bucket."
)

func deleteBucket(ctx context.Context, b s3ops.Bucket, req request, env *cmdenv.Env, l log.FieldLogger) error {
	status, err := b.Delete(ctx)
	if err != nil {
		return apperr.Remote("failed to delete bucket", err)
	}
	l.WithField("status", status).Debug("bucket delete answered")

	if status != http.StatusNoContent {
		return apperr.UnexpectedStatus(msgBucketDeleteFailed, status)
	}
	ui.Success(env.Stdout, msgBucketDeleted)
	return nil
}
