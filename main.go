package main

import (
	"os"

	"s3-cloud/internal/cli"
	"s3-cloud/internal/shared/cmdenv"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], cmdenv.Default()))
}
