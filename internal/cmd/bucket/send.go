package bucket

import (
	"context"
	"net/http"
	"os"

	"s3-cloud/internal/shared/apperr"
	"s3-cloud/internal/shared/cmdenv"
	"s3-cloud/internal/shared/s3ops"
	"s3-cloud/internal/shared/ui"

	log "github.com/sirupsen/logrus"
)

const (
	msgFileSent       = "File uploaded to the cloud successfully!"
	msgFileSendFailed = "Possible error uploading the file to the cloud."
)

// sendFile uploads the local file at req.path, read relative to the working
// directory, to "/"+req.path.
func sendFile(ctx context.Context, b s3ops.Bucket, req request, env *cmdenv.Env, l log.FieldLogger) error {
	data, err := os.ReadFile(req.path)
	if err != nil {
		return apperr.IO("failed to read file", err)
	}

	status, err := b.PutObject(ctx, "/"+req.path, data)
	if err != nil {
		return apperr.Remote("failed to upload file", err)
	}
	l.WithFields(log.Fields{"status": status, "bytes": len(data)}).Debug("upload answered")

	if status != http.StatusOK {
		return apperr.UnexpectedStatus(msgFileSendFailed, status)
	}
	ui.Success(env.Stdout, msgFileSent)
	return nil
}
