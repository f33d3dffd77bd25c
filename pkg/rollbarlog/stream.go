package rollbarlog

import (
	"log/slog"
	"net/http"
)

// Stream translates structured records into Reporter calls. It holds no
// per-record state and is safe for concurrent use.
type Stream struct {
	reporter    Reporter
	serializers Serializers
	metrics     *reportMetrics
	closer      func() error
}

// New builds a Stream. When no reporter is supplied a Rollbar client is
// initialized from the configured token and client options.
func New(opts ...Option) (*Stream, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return NewFromConfig(cfg)
}

// NewFromConfig builds a Stream from an explicit configuration.
func NewFromConfig(cfg *Config) (*Stream, error) {
	if cfg == nil {
		cfg = defaultConfig()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Stream{
		reporter:    cfg.Rollbar,
		serializers: cfg.Serializers,
	}
	if s.serializers == nil {
		s.serializers = RecoveringSerializers()
	}

	if s.reporter == nil {
		if cfg.RollbarToken == "" {
			return nil, ErrMissingToken
		}
		client := NewRollbarReporter(cfg.RollbarToken, cfg.RollbarOptions)
		s.reporter = client
		s.closer = client.Close
		logger.Info("rollbar client initialized",
			slog.String("environment", cfg.RollbarOptions.Environment),
			slog.Bool("enabled", cfg.RollbarOptions.enabled()),
			slog.Bool("synchronous", cfg.RollbarOptions.Synchronous),
		)
	}

	if cfg.Registerer != nil {
		m, err := newReportMetrics(cfg.Registerer)
		if err != nil {
			return nil, &ConfigError{Op: "new", Message: "failed to register metrics", Err: err}
		}
		s.metrics = m
	}

	return s, nil
}

// Serializers returns the serializers log front-ends should apply so the
// stream can recover original error and request values.
func (s *Stream) Serializers() Serializers {
	return s.serializers
}

// Reporter returns the client records are dispatched to.
func (s *Stream) Reporter() Reporter {
	return s.reporter
}

// Close releases a Rollbar client the stream created itself. Reporters
// passed in by the caller are left alone.
func (s *Stream) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

// Write dispatches one record. A record that is not a structured map returns
// ErrRawStreamRequired without reaching the reporter; reporter errors are
// returned as is.
func (s *Stream) Write(record any) error {
	rec, ok := asRecord(record)
	if !ok {
		return ErrRawStreamRequired
	}

	err := recoverError(rec[KeyErr])
	req := recoverRequest(rec[KeyReq])

	omit := make([]string, 0, 3)
	if err != nil {
		omit = append(omit, KeyErr)
	}
	if req != nil {
		omit = append(omit, KeyReq)
	}

	payload := Payload{Level: severityOf(rec.Level())}

	if err != nil {
		payload.Custom = rec.without(omit...)
		if rerr := s.reporter.ReportError(err, payload, req); rerr != nil {
			return rerr
		}
		s.metrics.observe(kindError, payload.Level)
		return nil
	}

	payload.Custom = rec.without(append(omit, KeyMsg)...)
	if rerr := s.reporter.ReportMessage(rec.Message(), payload, req); rerr != nil {
		return rerr
	}
	s.metrics.observe(kindMessage, payload.Level)
	return nil
}

func recoverError(v any) error {
	if s, ok := v.(*Serialized); ok {
		if err, ok := s.Original().(error); ok && !isNil(err) {
			return err
		}
	}
	if err, ok := v.(error); ok && !isNil(err) {
		return err
	}
	return nil
}

func recoverRequest(v any) *http.Request {
	if s, ok := v.(*Serialized); ok {
		if r := liveRequest(s.Original()); r != nil {
			return r
		}
	}
	return liveRequest(v)
}

// liveRequest reports v as a request only when it still carries its
// connection address; serialized request maps never do.
func liveRequest(v any) *http.Request {
	r, ok := v.(*http.Request)
	if !ok || r == nil || r.RemoteAddr == "" {
		return nil
	}
	return r
}
