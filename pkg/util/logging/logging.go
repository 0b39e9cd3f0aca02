package logging

import (
	"io"

	cfg "github.com/quill-network/quill-wire/pkg/config"
	log "github.com/sirupsen/logrus"
)

// InitLog applies the configured logger level and format, and directs
// output to out.
func InitLog(out io.Writer) {
	SetToLevel(cfg.Get().Logger.Level)

	if cfg.Get().Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}

	log.SetOutput(out)
}

// SetToLevel applies a logger level by name, falling back to trace when the
// name does not parse.
func SetToLevel(l string) {
	level, err := log.ParseLevel(l)
	if err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(log.TraceLevel)
		log.Warnf("Parse logger level from config err: %v", err)
	}
}
