package logger

import (
	"io"
	"strings"

	"github.com/aws/smithy-go/logging"
	log "github.com/sirupsen/logrus"
)

// New returns a logger writing text records to w. Only warnings and above
// are emitted unless verbose is set.
func New(w io.Writer, verbose bool) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetFormatter(&log.TextFormatter{
		DisableTimestamp: !verbose,
		FullTimestamp:    true,
	})
	l.SetLevel(log.WarnLevel)
	if verbose {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// SDKLogger adapts l to the logger interface used by the AWS SDK clients.
func SDKLogger(l log.FieldLogger) logging.Logger {
	return logging.LoggerFunc(func(classification logging.Classification, format string, v ...interface{}) {
		entry := l.WithField("source", "aws-sdk")
		msg := strings.TrimSpace(format)
		switch classification {
		case logging.Warn:
			entry.Warnf(msg, v...)
		default:
			entry.Debugf(msg, v...)
		}
	})
}
