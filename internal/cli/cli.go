package cli

import (
	"fmt"
	"io"
	"strings"

	"s3-cloud/internal/cmd/bucket"
	"s3-cloud/internal/cmd/configure"
	"s3-cloud/internal/shared/apperr"
	"s3-cloud/internal/shared/cmdenv"
	"s3-cloud/internal/shared/ui"
)

const binaryName = "s3-cloud"

// Run dispatches args (without the program name) and returns the exit code.
func Run(args []string, env *cmdenv.Env) int {
	if len(args) < 1 {
		printUsage(env.Stderr)
		return apperr.ExitUsage
	}

	sub := strings.TrimSpace(args[0])
	rest := args[1:]

	switch {
	case sub == "config":
		return configure.Run(rest, env)
	case sub == "help", sub == "-h", sub == "--help":
		printUsage(env.Stdout)
		return apperr.ExitOK
	case bucket.IsAction(sub):
		return bucket.Run(sub, rest, env)
	default:
		ui.Error(env.Stderr, fmt.Sprintf("Unknown command: %q", sub))
		fmt.Fprintln(env.Stderr, "")
		printUsage(env.Stderr)
		return apperr.ExitOK
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s <command> [flags] [args]\n\n", binaryName)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  config --access-key <KEY>      Store the access key")
	fmt.Fprintln(w, "  config --secret-key <KEY>      Store the secret key")
	fmt.Fprintln(w, "  config --interactive           Enter both keys in a form")
	fmt.Fprintln(w, "  create <bucket>                Create a bucket unless it exists")
	fmt.Fprintln(w, "  delete <bucket>                Delete a bucket")
	fmt.Fprintln(w, "  send <bucket> <file>           Upload a local file")
	fmt.Fprintln(w, "  delete-file <bucket> <file>    Delete a file from the bucket")
	fmt.Fprintln(w, "  get <bucket> <file>            Download a file to ~/s3-cloud")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "<bucket> <file> may also be given as s3://<bucket>/<file>.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Flags (all commands):")
	fmt.Fprintln(w, "  --config <path>     Credentials file (default .env)")
	fmt.Fprintln(w, "  --region <region>   Bucket region (default $S3CLOUD_REGION or sa-east-1)")
	fmt.Fprintln(w, "  --endpoint <url>    S3-compatible endpoint (default $S3CLOUD_ENDPOINT)")
	fmt.Fprintln(w, "  -v, --verbose       Log requests to stderr")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Use \"%s <command> -h\" for command-specific help.\n", binaryName)
}
