package rollbarlog

import (
	"net/http"

	"github.com/rollbar/rollbar-go"
)

// RollbarReporter dispatches to a rollbar-go client.
type RollbarReporter struct {
	client *rollbar.Client
}

// NewRollbarReporter creates a rollbar-go client from a token and options.
func NewRollbarReporter(token string, opts ClientOptions) *RollbarReporter {
	newClient := rollbar.New
	if opts.Synchronous {
		newClient = rollbar.NewSync
	}

	client := newClient(token, opts.Environment, opts.CodeVersion, opts.ServerHost, opts.ServerRoot)
	if opts.Endpoint != "" {
		client.SetEndpoint(opts.Endpoint)
	}
	client.SetEnabled(opts.enabled())

	return &RollbarReporter{client: client}
}

// WrapRollbarClient adapts a client the caller already configured.
func WrapRollbarClient(client *rollbar.Client) *RollbarReporter {
	return &RollbarReporter{client: client}
}

// ReportError sends err with the payload custom data as extras.
func (r *RollbarReporter) ReportError(err error, payload Payload, req *http.Request) error {
	extras := map[string]any(payload.Custom)
	if req != nil {
		r.client.RequestErrorWithExtras(payload.Level, req, err, extras)
		return nil
	}
	r.client.ErrorWithExtras(payload.Level, err, extras)
	return nil
}

// ReportMessage sends msg with the payload custom data as extras.
func (r *RollbarReporter) ReportMessage(msg string, payload Payload, req *http.Request) error {
	extras := map[string]any(payload.Custom)
	if req != nil {
		r.client.RequestMessageWithExtras(payload.Level, req, msg, extras)
		return nil
	}
	r.client.MessageWithExtras(payload.Level, msg, extras)
	return nil
}

// Close waits for queued items and shuts the client down.
func (r *RollbarReporter) Close() error {
	return r.client.Close()
}
