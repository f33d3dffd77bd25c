package rollbarlog

import (
	"log/slog"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level is the severity of a Record. Values line up with log/slog so a
// slog.Level converts directly.
type Level int

const (
	LevelTrace Level = -8
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
	LevelFatal Level = 12
)

// Rollbar severities.
const (
	SeverityDebug    = "debug"
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityError    = "error"
	SeverityCritical = "critical"
)

var severities = map[Level]string{
	LevelTrace: SeverityDebug,
	LevelDebug: SeverityDebug,
	LevelInfo:  SeverityInfo,
	LevelWarn:  SeverityWarning,
	LevelError: SeverityError,
	LevelFatal: SeverityCritical,
}

// Severity maps a level onto the Rollbar scale. Levels outside the table
// report as error.
func (l Level) Severity() string {
	if s, ok := severities[l]; ok {
		return s
	}
	return SeverityError
}

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	}
	return slog.Level(l).String()
}

// ParseLevel accepts the level names used in configuration. Unknown names
// fall back to info.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal", "critical":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// FromZapLevel converts a zap level. DPanic and Panic are treated as fatal.
func FromZapLevel(l zapcore.Level) Level {
	switch l {
	case zapcore.DebugLevel:
		return LevelDebug
	case zapcore.InfoLevel:
		return LevelInfo
	case zapcore.WarnLevel:
		return LevelWarn
	case zapcore.ErrorLevel:
		return LevelError
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return LevelFatal
	}
	if l < zapcore.DebugLevel {
		return LevelTrace
	}
	return Level(l)
}

// severityOf reads the level stored in a record. Values of an unexpected
// type resolve to error, like any other unknown ordinal.
func severityOf(v any) string {
	switch lv := v.(type) {
	case Level:
		return lv.Severity()
	case slog.Level:
		return Level(lv).Severity()
	case zapcore.Level:
		return FromZapLevel(lv).Severity()
	case int:
		return Level(lv).Severity()
	case int64:
		return Level(lv).Severity()
	case float64:
		if lv == float64(int(lv)) {
			return Level(int(lv)).Severity()
		}
	}
	return SeverityError
}
