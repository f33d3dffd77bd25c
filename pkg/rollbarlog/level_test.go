package rollbarlog

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLevel_Severity(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelTrace, "debug"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warning"},
		{LevelError, "error"},
		{LevelFatal, "critical"},
		{Level(1), "error"},
		{Level(-100), "error"},
		{Level(100), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.Severity())
			assert.Equal(t, tt.level.Severity(), tt.level.Severity())
		})
	}
}

func TestSeverityOf(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"level", LevelWarn, "warning"},
		{"slog level", slog.LevelInfo, "info"},
		{"zap level", zapcore.FatalLevel, "critical"},
		{"int", 8, "error"},
		{"int64", int64(-4), "debug"},
		{"float64 from json", float64(12), "critical"},
		{"fractional float", 4.5, "error"},
		{"string", "info", "error"},
		{"nil", nil, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, severityOf(tt.value))
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected Level
	}{
		{"trace", LevelTrace},
		{"DEBUG", LevelDebug},
		{" info ", LevelInfo},
		{"warning", LevelWarn},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"critical", LevelFatal},
		{"fatal", LevelFatal},
		{"unknown", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.name))
		})
	}
}

func TestFromZapLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, FromZapLevel(zapcore.DebugLevel))
	assert.Equal(t, LevelInfo, FromZapLevel(zapcore.InfoLevel))
	assert.Equal(t, LevelWarn, FromZapLevel(zapcore.WarnLevel))
	assert.Equal(t, LevelError, FromZapLevel(zapcore.ErrorLevel))
	assert.Equal(t, LevelFatal, FromZapLevel(zapcore.DPanicLevel))
	assert.Equal(t, LevelFatal, FromZapLevel(zapcore.PanicLevel))
	assert.Equal(t, LevelFatal, FromZapLevel(zapcore.FatalLevel))
	assert.Equal(t, LevelTrace, FromZapLevel(zapcore.Level(-2)))
}
