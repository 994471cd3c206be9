package config

import (
	"os"

	"s3-cloud/internal/shared/credstore"

	"github.com/spf13/pflag"
)

const (
	DefaultRegion = "sa-east-1"

	EnvRegion   = "S3CLOUD_REGION"
	EnvEndpoint = "S3CLOUD_ENDPOINT"
)

type Options struct {
	ConfigFile string
	Region     string
	Endpoint   string
	Verbose    bool
}

// AddFileFlags registers the flags shared by every command: the credentials
// file and verbosity.
func AddFileFlags(fs *pflag.FlagSet, opts *Options) {
	fs.StringVar(&opts.ConfigFile, "config", credstore.DefaultPath, "Path to the credentials file")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "Log requests and responses to stderr")
}

// AddFlags registers the file flags plus the connection flags used by the
// bucket commands.
func AddFlags(fs *pflag.FlagSet, opts *Options) {
	AddFileFlags(fs, opts)
	fs.StringVar(&opts.Region, "region", "", "Bucket region (default $"+EnvRegion+" or "+DefaultRegion+")")
	fs.StringVar(&opts.Endpoint, "endpoint", "", "S3-compatible endpoint URL (default $"+EnvEndpoint+")")
}

// ApplyEnv fills unset options from the environment and defaults.
func (o *Options) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if o.Region == "" {
		if v, ok := lookup(EnvRegion); ok && v != "" {
			o.Region = v
		} else {
			o.Region = DefaultRegion
		}
	}
	if o.Endpoint == "" {
		if v, ok := lookup(EnvEndpoint); ok {
			o.Endpoint = v
		}
	}
	if o.ConfigFile == "" {
		o.ConfigFile = credstore.DefaultPath
	}
}
