package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/uhppoted/uhppoted-app-gcs/acl"
	"github.com/uhppoted/uhppoted-app-gcs/gcs"
	"github.com/uhppoted/uhppoted-app-gcs/log"
	"github.com/uhppoted/uhppoted-app-gcs/s3"
)

const APP = "uhppoted-app-gcs"
const VERSION = "v0.1.0"

type Options struct {
	Provider    string
	Credentials string
	Region      string
	Env         string
	Project     string
	Debug       bool
}

// Connect opens the storage backend selected by the 'provider' option.
func Connect(ctx context.Context, options Options) (acl.Store, error) {
	switch strings.ToLower(options.Provider) {
	case "", "gcs":
		store, err := gcs.NewStore(ctx, options.Project, options.Credentials)
		if err != nil {
			return nil, err
		}

		return store, nil

	case "s3":
		store, err := s3.NewStore(options.Credentials, options.Region)
		if err != nil {
			return nil, err
		}

		return store, nil

	default:
		return nil, fmt.Errorf("unknown storage provider '%v'", options.Provider)
	}
}

func helpOptions(flagset *flag.FlagSet, w io.Writer) {
	if flagset == nil {
		return
	}

	count := 0
	flagset.VisitAll(func(f *flag.Flag) {
		count++
	})

	if count > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Options:")
		flagset.VisitAll(func(f *flag.Flag) {
			fmt.Fprintf(w, "    --%-13s %s\n", f.Name, f.Usage)
		})
	}
}

func debugf(format string, args ...any) {
	log.Debugf(format, args...)
}

func warnf(format string, args ...any) {
	log.Warnf(format, args...)
}
