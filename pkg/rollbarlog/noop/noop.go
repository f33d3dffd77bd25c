package noop

import (
	"net/http"

	"github.com/JailtonJunior94/devkit-rollbar/pkg/rollbarlog"
)

// Reporter discards every report. Use it when error tracking is disabled.
type Reporter struct{}

// NewReporter creates a no-op reporter.
func NewReporter() Reporter {
	return Reporter{}
}

func (Reporter) ReportError(error, rollbarlog.Payload, *http.Request) error {
	return nil
}

func (Reporter) ReportMessage(string, rollbarlog.Payload, *http.Request) error {
	return nil
}
