package log

import (
	"github.com/uhppoted/uhppoted-lib/log"
)

func SetDebug(enabled bool) {
	log.SetDebug(enabled)
}

func Debugf(format string, args ...any) {
	log.Debugf(format, args...)
}

func Warnf(format string, args ...any) {
	log.Warnf(format, args...)
}
