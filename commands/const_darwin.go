package commands

const (
	DEFAULT_PROVIDER    = "gcs"
	DEFAULT_ENV         = "/usr/local/etc/com.github.uhppoted/uhppoted-app-gcs.env"
	DEFAULT_CREDENTIALS = ""
	DEFAULT_REGION      = "us-east-1"
)
