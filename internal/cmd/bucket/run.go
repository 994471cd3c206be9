package bucket

import (
	"context"
	"errors"
	"fmt"
	"io"

	"s3-cloud/internal/s3uri"
	"s3-cloud/internal/shared/apperr"
	"s3-cloud/internal/shared/cmdenv"
	"s3-cloud/internal/shared/config"
	"s3-cloud/internal/shared/credstore"
	"s3-cloud/internal/shared/logger"
	"s3-cloud/internal/shared/s3ops"
	"s3-cloud/internal/shared/ui"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	ActionCreate     = "create"
	ActionDelete     = "delete"
	ActionSend       = "send"
	ActionDeleteFile = "delete-file"
	ActionGet        = "get"
)

type handler func(ctx context.Context, b s3ops.Bucket, req request, env *cmdenv.Env, l log.FieldLogger) error

type action struct {
	needsPath bool
	usage     string
	run       handler
}

var actions = map[string]action{
	ActionCreate:     {usage: "<bucket>", run: createBucket},
	ActionDelete:     {usage: "<bucket>", run: deleteBucket},
	ActionSend:       {needsPath: true, usage: "<bucket> <file>", run: sendFile},
	ActionDeleteFile: {needsPath: true, usage: "<bucket> <file>", run: deleteFile},
	ActionGet:        {needsPath: true, usage: "<bucket> <file>", run: getFile},
}

// IsAction reports whether name is a bucket command.
func IsAction(name string) bool {
	_, ok := actions[name]
	return ok
}

type request struct {
	action string
	bucket string
	path   string
}

func newFlagSet(name string) *pflag.FlagSet {
	return pflag.NewFlagSet(name, pflag.ContinueOnError)
}

func printUsage(w io.Writer, fs *pflag.FlagSet, name string) {
	a := actions[name]
	fmt.Fprintf(w, "Usage: s3-cloud %s [flags] %s\n", name, a.usage)
	if a.needsPath {
		fmt.Fprintf(w, "       s3-cloud %s [flags] s3://<bucket>/<file>\n", name)
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}

// Run executes the bucket command name. The caller has already checked
// IsAction(name).
func Run(name string, args []string, env *cmdenv.Env) int {
	fs := newFlagSet(name)
	fs.SetOutput(env.Stderr)

	opts := &config.Options{}
	config.AddFlags(fs, opts)

	fs.Usage = func() {
		printUsage(env.Stderr, fs, name)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return apperr.ExitOK
		}
		ui.Error(env.Stderr, err.Error())
		fs.Usage()
		return apperr.ExitUsage
	}

	opts.ApplyEnv(env.Lookup)
	l := logger.New(env.Stderr, opts.Verbose)

	req, err := parseRequest(name, fs.Args())
	if err != nil {
		ui.Error(env.Stderr, err.Error())
		fs.Usage()
		return apperr.ExitCode(err)
	}

	err = execute(context.Background(), req, *opts, env, l)
	return report(env, l, req, err)
}

func parseRequest(name string, args []string) (request, error) {
	req := request{action: name}
	a := actions[name]

	if len(args) == 0 {
		return req, apperr.Usage("missing bucket name")
	}

	rest := args[1:]
	if s3uri.IsURI(args[0]) {
		bucket, key, err := s3uri.Parse(args[0])
		if err != nil {
			return req, apperr.Usage("%v", err)
		}
		req.bucket, req.path = bucket, key
	} else {
		req.bucket = args[0]
	}

	if req.path == "" && a.needsPath && len(rest) > 0 {
		req.path, rest = rest[0], rest[1:]
	}
	if len(rest) > 0 {
		return req, apperr.Usage("unexpected argument %q", rest[0])
	}

	if a.needsPath && req.path == "" {
		return req, apperr.Usage("missing file path")
	}
	if !a.needsPath && req.path != "" {
		return req, apperr.Usage("%s takes no file path", name)
	}

	return req, nil
}

func execute(ctx context.Context, req request, opts config.Options, env *cmdenv.Env, l *log.Logger) error {
	entry := l.WithFields(log.Fields{
		"action": req.action,
		"bucket": req.bucket,
		"region": opts.Region,
	})
	if req.path != "" {
		entry = entry.WithField("path", req.path)
	}

	store, err := credstore.Load(opts.ConfigFile)
	if err != nil {
		return err
	}
	creds, err := store.Credentials(env.Lookup)
	if err != nil {
		return err
	}

	entry.Debug("opening bucket")
	b, err := env.OpenBucket(ctx, req.bucket, creds, opts, l)
	if err != nil {
		return apperr.Config("failed to open bucket %q: %v", req.bucket, err)
	}

	return actions[req.action].run(ctx, b, req, env, entry)
}

func report(env *cmdenv.Env, l *log.Logger, req request, err error) int {
	if err == nil {
		return apperr.ExitOK
	}

	fields := log.Fields{"action": req.action, "kind": apperr.KindOf(err).String()}
	var e *apperr.Error
	if errors.As(err, &e) && e.Status != 0 {
		fields["status"] = e.Status
	}
	l.WithFields(fields).Debug("command failed")

	ui.Error(env.Stderr, err.Error())
	return apperr.ExitCode(err)
}
