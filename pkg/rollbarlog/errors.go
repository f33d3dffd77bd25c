package rollbarlog

import (
	"errors"
	"fmt"
)

var (
	// ErrRawStreamRequired is returned when a record is not a structured map.
	ErrRawStreamRequired = &ConfigError{
		Op:      "write",
		Message: "rollbarlog requires a raw stream; configure the stream to deliver structured records instead of formatted strings",
	}

	// ErrMissingToken is returned when neither a reporter nor a token is configured.
	ErrMissingToken = &ConfigError{
		Op:      "new",
		Message: "either a reporter or a rollbar access token must be configured",
	}
)

// ConfigError reports a misconfigured stream.
type ConfigError struct {
	Op      string // Operation that detected the problem
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rollbarlog config error in %s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("rollbarlog config error in %s: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is matches config errors by operation and message so wrapped copies of the
// sentinels still satisfy errors.Is.
func (e *ConfigError) Is(target error) bool {
	var t *ConfigError
	if !errors.As(target, &t) {
		return false
	}
	return e.Op == t.Op && e.Message == t.Message
}
