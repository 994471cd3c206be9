package bucket

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"s3-cloud/internal/shared/apperr"
	"s3-cloud/internal/shared/cmdenv"
	"s3-cloud/internal/shared/s3ops"
	"s3-cloud/internal/shared/ui"

	log "github.com/sirupsen/logrus"
)

// DownloadDir is the folder under the user's home that receives downloads.
const DownloadDir = "s3-cloud"

// downloadPath maps an object path to its destination under
// <home>/s3-cloud. Paths resolving outside that folder are rejected.
func downloadPath(home, path string) (string, error) {
	root := filepath.Join(home, DownloadDir)
	dest := filepath.Join(root, filepath.FromSlash(path))

	rel, err := filepath.Rel(root, dest)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", apperr.Usage("invalid file path %q: resolves outside %s", path, root)
	}
	return dest, nil
}

// getFile downloads "/"+req.path. Nothing is written unless the backend
// answers 200.
func getFile(ctx context.Context, b s3ops.Bucket, req request, env *cmdenv.Env, l log.FieldLogger) error {
	home, err := env.Home()
	if err != nil {
		return apperr.IO("failed to resolve home directory", err)
	}
	dest, err := downloadPath(home, req.path)
	if err != nil {
		return err
	}

	data, status, err := b.GetObject(ctx, "/"+req.path)
	if err != nil {
		return apperr.Remote("failed to download file", err)
	}
	l.WithFields(log.Fields{"status": status, "bytes": len(data)}).Debug("download answered")

	if status != http.StatusOK {
		return apperr.UnexpectedStatus(fmt.Sprintf("Failed to download %s (status %d).", req.path, status), status)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return apperr.IO("failed to create download folder", err)
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return apperr.IO("failed to write file", err)
	}

	ui.Success(env.Stdout, fmt.Sprintf("File saved to %s", dest))
	return nil
}
