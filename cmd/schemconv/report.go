package main

import (
	"github.com/oriumgames/pile/schemconv/legacy"
	"github.com/sirupsen/logrus"
)

// logReporter forwards conversion problems to a logger.
type logReporter struct {
	log *logrus.Entry
}

// Report implements legacy.Reporter.
func (r logReporter) Report(sev legacy.Severity, msg string) {
	switch sev {
	case legacy.SeverityError:
		r.log.Error(msg)
	case legacy.SeverityWarning:
		r.log.Warn(msg)
	default:
		r.log.Info(msg)
	}
}
