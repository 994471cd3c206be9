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

const msgFileDeleted = "File deleted from the cloud successfully!"

func deleteFile(ctx context.Context, b s3ops.Bucket, req request, env *cmdenv.Env, l log.FieldLogger) error {
	status, err := b.DeleteObject(ctx, "/"+req.path)
	if err != nil {
		return apperr.Remote("failed to delete file", err)
	}
	l.WithField("status", status).Debug("object delete answered")

	if status != http.StatusNoContent {
		return apperr.UnexpectedStatus(fmt.Sprintf("Possible error deleting the file from the cloud (status %d).", status), status)
	}
	ui.Success(env.Stdout, msgFileDeleted)
	return nil
}
