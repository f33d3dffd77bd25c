package fake

import (
	"net/http"
	"sync"
	"time"

	"github.com/JailtonJunior94/devkit-rollbar/pkg/rollbarlog"
)

// Kind identifies which reporter operation was called.
type Kind string

const (
	KindError   Kind = "error"
	KindMessage Kind = "message"
)

// Call is one captured reporter invocation.
type Call struct {
	Kind      Kind
	Err       error
	Message   string
	Payload   rollbarlog.Payload
	Request   *http.Request
	Timestamp time.Time
}

// Reporter captures every report so tests can inspect it.
type Reporter struct {
	mu    sync.RWMutex
	calls []Call
	fail  error
}

// NewReporter creates a new fake reporter.
func NewReporter() *Reporter {
	return &Reporter{calls: make([]Call, 0)}
}

// ReportError captures an error report.
func (r *Reporter) ReportError(err error, payload rollbarlog.Payload, req *http.Request) error {
	return r.capture(Call{Kind: KindError, Err: err, Payload: payload, Request: req})
}

// ReportMessage captures a message report.
func (r *Reporter) ReportMessage(msg string, payload rollbarlog.Payload, req *http.Request) error {
	return r.capture(Call{Kind: KindMessage, Message: msg, Payload: payload, Request: req})
}

func (r *Reporter) capture(c Call) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.Timestamp = time.Now()
	r.calls = append(r.calls, c)
	return r.fail
}

// FailWith makes subsequent reports return err after being captured.
func (r *Reporter) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = err
}

// GetCalls returns all captured calls (for test assertions).
func (r *Reporter) GetCalls() []Call {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Call, len(r.calls))
	copy(result, r.calls)
	return result
}

// LastCall returns the most recent call, if any.
func (r *Reporter) LastCall() (Call, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.calls) == 0 {
		return Call{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// Reset clears all captured calls and any injected failure.
func (r *Reporter) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = make([]Call, 0)
	r.fail = nil
}
