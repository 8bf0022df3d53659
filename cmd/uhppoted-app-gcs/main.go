package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/uhppoted/uhppoted-app-gcs/commands"
	"github.com/uhppoted/uhppoted-app-gcs/log"
)

var options = commands.Options{
	Provider:    commands.DEFAULT_PROVIDER,
	Credentials: commands.DEFAULT_CREDENTIALS,
	Region:      commands.DEFAULT_REGION,
	Env:         commands.DEFAULT_ENV,
	Debug:       false,
}

func main() {
	flag.StringVar(&options.Provider, "provider", options.Provider, "Storage provider ('gcs' or 's3')")
	flag.StringVar(&options.Credentials, "credentials", options.Credentials, "GCS service account JSON file or AWS credentials file (defaults to the provider's default credentials)")
	flag.StringVar(&options.Region, "region", options.Region, "AWS region for S3")
	flag.StringVar(&options.Env, "env", options.Env, "Optional .env file with environment variables (e.g. GOOGLE_CLOUD_PROJECT)")
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	log.SetDebug(options.Debug)

	if err := godotenv.Load(options.Env); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("\n   ERROR: invalid .env file %v (%v)\n\n", options.Env, err)
		os.Exit(1)
	}

	options.Project = os.Getenv("GOOGLE_CLOUD_PROJECT")

	cli := commands.NewCLI(options, flag.CommandLine)
	if err := cli.Dispatch(context.Background()); err != nil {
		fmt.Printf("\n   ERROR: %v\n\n", err)
		os.Exit(1)
	}
}
