package configure

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"s3-cloud/internal/shared/apperr"
	"s3-cloud/internal/shared/cmdenv"
	"s3-cloud/internal/shared/config"
	"s3-cloud/internal/shared/credstore"
	"s3-cloud/internal/shared/logger"
	"s3-cloud/internal/shared/ui"

	"github.com/spf13/pflag"
)

const msgUnknownCommand = "Unknown command."

func newFlagSet() *pflag.FlagSet {
	return pflag.NewFlagSet("config", pflag.ContinueOnError)
}

func printUsage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(w, "Usage: s3-cloud config --access-key <KEY>")
	fmt.Fprintln(w, "       s3-cloud config --secret-key <KEY>")
	fmt.Fprintln(w, "       s3-cloud config --interactive")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Store the credentials used by the bucket commands.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}

func Run(args []string, env *cmdenv.Env) int {
	fs := newFlagSet()
	fs.SetOutput(env.Stderr)
	accessKey := fs.String("access-key", "", "Access key to store")
	secretKey := fs.String("secret-key", "", "Secret key to store")
	interactive := fs.BoolP("interactive", "i", false, "Enter both keys in a terminal form")

	opts := &config.Options{}
	config.AddFileFlags(fs, opts)

	fs.Usage = func() {
		printUsage(env.Stderr, fs)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return apperr.ExitOK
		}
		// An unknown flag is reported but is not a failure.
		if strings.HasPrefix(err.Error(), "unknown") {
			ui.Error(env.Stderr, msgUnknownCommand)
			return apperr.ExitOK
		}
		ui.Error(env.Stderr, err.Error())
		fs.Usage()
		return apperr.ExitUsage
	}
	l := logger.New(env.Stderr, opts.Verbose)

	if fs.NArg() > 0 {
		ui.Error(env.Stderr, msgUnknownCommand)
		return apperr.ExitOK
	}

	setAccess, setSecret := fs.Changed("access-key"), fs.Changed("secret-key")
	if !setAccess && !setSecret && !*interactive {
		ui.Error(env.Stderr, "missing flag: --access-key, --secret-key or --interactive")
		fs.Usage()
		return apperr.ExitUsage
	}

	store, err := credstore.Load(opts.ConfigFile)
	if err != nil {
		ui.Error(env.Stderr, err.Error())
		return apperr.ExitCode(err)
	}

	if *interactive {
		err = prompt(store, env, setAccess, setSecret, *accessKey, *secretKey)
		if errors.Is(err, ErrCancelled) {
			ui.Warning(env.Stderr, "Cancelled, nothing saved.")
			return apperr.ExitFailure
		}
		if err != nil {
			ui.Error(env.Stderr, err.Error())
			return apperr.ExitCode(err)
		}
	} else {
		if setAccess {
			store.Set(credstore.AccessKey, *accessKey)
		}
		if setSecret {
			store.Set(credstore.SecretKey, *secretKey)
		}
	}

	if err := store.Save(); err != nil {
		ui.Error(env.Stderr, err.Error())
		return apperr.ExitCode(err)
	}
	l.WithField("file", store.Path()).Debug("credentials saved")

	ui.Success(env.Stdout, fmt.Sprintf("Credentials saved to %s", store.Path()))
	return apperr.ExitOK
}

// prompt runs the form prefilled from the store, or from flags given on the
// same command line.
func prompt(store *credstore.Store, env *cmdenv.Env, setAccess, setSecret bool, accessKey, secretKey string) error {
	current := func(key string, set bool, flagValue string) string {
		if set {
			return flagValue
		}
		v, _ := store.Get(key)
		return v
	}

	ask := env.Prompt
	if ask == nil {
		ask = RunForm
	}

	access, secret, err := ask(env.Stdin, env.Stdout,
		current(credstore.AccessKey, setAccess, accessKey),
		current(credstore.SecretKey, setSecret, secretKey),
	)
	if err != nil {
		return err
	}

	store.Set(credstore.AccessKey, access)
	store.Set(credstore.SecretKey, secret)
	return nil
}
