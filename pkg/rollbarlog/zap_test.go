package rollbarlog_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JailtonJunior94/devkit-rollbar/pkg/rollbarlog"
	"github.com/JailtonJunior94/devkit-rollbar/pkg/rollbarlog/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var timeZero time.Time

func newZapLogger(t *testing.T, enab zapcore.LevelEnabler) (*zap.Logger, *fake.Reporter) {
	t.Helper()
	stream, reporter := newStream(t)
	return zap.New(rollbarlog.NewCore(stream, enab)), reporter
}

func TestCore_Message(t *testing.T) {
	logger, reporter := newZapLogger(t, zapcore.DebugLevel)

	logger.Named("billing").Info("invoice sent", zap.String("invoice", "inv-1"), zap.Int("attempt", 2))

	call, ok := reporter.LastCall()
	require.True(t, ok)
	assert.Equal(t, fake.KindMessage, call.Kind)
	assert.Equal(t, "invoice sent", call.Message)
	assert.Equal(t, "info", call.Payload.Level)
	assert.Equal(t, "inv-1", call.Payload.Custom["invoice"])
	assert.EqualValues(t, 2, call.Payload.Custom["attempt"])
	assert.Equal(t, "billing", call.Payload.Custom["logger"])
	assert.NotContains(t, call.Payload.Custom, "msg")
}

func TestCore_ErrorFieldIsRecovered(t *testing.T) {
	tests := []struct {
		name  string
		field func(error) zap.Field
	}{
		{name: "zap.Error", field: zap.Error},
		{name: "named err", field: func(err error) zap.Field { return zap.NamedError("err", err) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, reporter := newZapLogger(t, zapcore.DebugLevel)
			testErr := errors.New("upstream timeout")

			logger.Error("sync failed", tt.field(testErr))

			calls := reporter.GetCalls()
			require.Len(t, calls, 1)
			call := calls[0]
			assert.Equal(t, fake.KindError, call.Kind)
			assert.Same(t, testErr, call.Err)
			assert.Equal(t, "error", call.Payload.Level)
			assert.Equal(t, "sync failed", call.Payload.Custom["msg"])
			assert.NotContains(t, call.Payload.Custom, "err")
			assert.NotContains(t, call.Payload.Custom, "error")
		})
	}
}

func TestCore_RequestFieldIsRecovered(t *testing.T) {
	logger, reporter := newZapLogger(t, zapcore.DebugLevel)
	r := httptest.NewRequest(http.MethodGet, "/health", nil)

	logger.Warn("slow health check", zap.Any("req", r))

	call, ok := reporter.LastCall()
	require.True(t, ok)
	assert.Equal(t, fake.KindMessage, call.Kind)
	assert.Same(t, r, call.Request)
	assert.Equal(t, "warning", call.Payload.Level)
	assert.NotContains(t, call.Payload.Custom, "req")
}

func TestCore_WithFields(t *testing.T) {
	logger, reporter := newZapLogger(t, zapcore.DebugLevel)
	testErr := errors.New("bound error")

	child := logger.With(zap.String("tenant", "acme"), zap.Error(testErr))
	child.Error("first")
	logger.Error("second")

	calls := reporter.GetCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, fake.KindError, calls[0].Kind)
	assert.Same(t, testErr, calls[0].Err)
	assert.Equal(t, "acme", calls[0].Payload.Custom["tenant"])

	assert.Equal(t, fake.KindMessage, calls[1].Kind)
	assert.NotContains(t, calls[1].Payload.Custom, "tenant")
}

func TestCore_LevelFilter(t *testing.T) {
	logger, reporter := newZapLogger(t, zapcore.WarnLevel)

	logger.Debug("dropped")
	logger.Info("dropped")
	assert.Empty(t, reporter.GetCalls())

	logger.DPanic("forwarded as critical")
	call, ok := reporter.LastCall()
	require.True(t, ok)
	assert.Equal(t, "critical", call.Payload.Level)
}

func TestCore_ReturnsReporterError(t *testing.T) {
	stream, reporter := newStream(t)
	reporterErr := errors.New("rollbar down")
	reporter.FailWith(reporterErr)
	core := rollbarlog.NewCore(stream, zapcore.DebugLevel)

	err := core.Write(zapcore.Entry{Level: zapcore.ErrorLevel, Message: "x"}, nil)
	assert.Same(t, reporterErr, err)
	assert.NoError(t, core.Sync())
}

func TestCore_TypedNilError(t *testing.T) {
	logger, reporter := newZapLogger(t, zapcore.DebugLevel)
	var typedNil *nilError

	require.NotPanics(t, func() {
		logger.Error("typed nil", zap.NamedError("err", typedNil))
	})

	call, ok := reporter.LastCall()
	require.True(t, ok)
	assert.Equal(t, fake.KindMessage, call.Kind)
	assert.Equal(t, "typed nil", call.Message)
}

func TestCore_ReservedKeysArePrefixed(t *testing.T) {
	logger, reporter := newZapLogger(t, zapcore.DebugLevel)

	logger.Error("real message", zap.String("level", "x"), zap.String("msg", "shadow"))

	call, ok := reporter.LastCall()
	require.True(t, ok)
	assert.Equal(t, "real message", call.Message)
	assert.Equal(t, "error", call.Payload.Level)
	assert.Equal(t, rollbarlog.LevelError, call.Payload.Custom["level"])
	assert.Equal(t, "x", call.Payload.Custom["fields.level"])
	assert.Equal(t, "shadow", call.Payload.Custom["fields.msg"])
}
