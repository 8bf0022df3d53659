package commands

const (
	DEFAULT_PROVIDER    = "gcs"
	DEFAULT_ENV         = "/etc/uhppoted/uhppoted-app-gcs.env"
	DEFAULT_CREDENTIALS = ""
	DEFAULT_REGION      = "us-east-1"
)
