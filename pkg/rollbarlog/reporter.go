package rollbarlog

import "net/http"

// Payload is the severity and custom data sent alongside a report.
type Payload struct {
	Level  string
	Custom Record
}

// Reporter is the error tracking client a Stream dispatches to. Exactly one
// method is called per record. req is nil when no live request was found.
type Reporter interface {
	ReportError(err error, payload Payload, req *http.Request) error
	ReportMessage(msg string, payload Payload, req *http.Request) error
}
