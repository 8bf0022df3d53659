package commands

import (
	"os"
	"path/filepath"
)

var DEFAULT_PROVIDER = "gcs"
var DEFAULT_ENV = filepath.Join(workdir(), "uhppoted-app-gcs.env")
var DEFAULT_CREDENTIALS = ""
var DEFAULT_REGION = "us-east-1"

func workdir() string {
	programData := os.Getenv("ProgramData")
	if programData == "" {
		return `C:\uhppoted`
	}

	return filepath.Join(programData, "uhppoted")
}
