package rollbarlogfx

import (
	"context"
	"log/slog"

	"github.com/JailtonJunior94/devkit-rollbar/pkg/rollbarlog"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Module provides the stream and loggers writing to it.
// Usage:
//
//	fx.New(
//	    rollbarlogfx.ConfigModule,
//	    rollbarlogfx.Module,
//	)
var Module = fx.Module("rollbarlog",
	fx.Provide(
		ProvideStream,
		ProvideSlogLogger,
		ProvideZapLogger,
	),
)

// ModuleWithConfig provides the stream with inline config and level.
func ModuleWithConfig(cfg rollbarlog.Config, level rollbarlog.Level) fx.Option {
	return fx.Module("rollbarlog",
		fx.Supply(cfg, level),
		fx.Provide(
			ProvideStream,
			ProvideSlogLogger,
			ProvideZapLogger,
		),
	)
}

// StreamParams contains dependencies for creating a Stream.
type StreamParams struct {
	fx.In

	Config     rollbarlog.Config
	LC         fx.Lifecycle
	Registerer prometheus.Registerer `optional:"true"`
	Logger     *slog.Logger          `name:"rollbarlog_diagnostics" optional:"true"`
	Options    []rollbarlog.Option   `group:"rollbarlog_options"`
}

// ProvideStream creates a Stream and closes a self-initialized client on stop.
func ProvideStream(p StreamParams) (*rollbarlog.Stream, error) {
	cfg := p.Config
	if p.Registerer != nil {
		cfg.Registerer = p.Registerer
	}
	if p.Logger != nil {
		cfg.Logger = p.Logger
	}
	for _, opt := range p.Options {
		opt(&cfg)
	}

	stream, err := rollbarlog.NewFromConfig(&cfg)
	if err != nil {
		return nil, err
	}

	p.LC.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return stream.Close()
		},
	})

	return stream, nil
}

// LoggerParams contains dependencies for the log front-ends.
type LoggerParams struct {
	fx.In

	Stream *rollbarlog.Stream
	Level  rollbarlog.Level
}

// ProvideSlogLogger creates a *slog.Logger forwarding to the stream.
func ProvideSlogLogger(p LoggerParams) *slog.Logger {
	return slog.New(rollbarlog.NewHandler(p.Stream, &rollbarlog.HandlerOptions{
		Level: slog.Level(p.Level),
	}))
}

// ProvideZapLogger creates a *zap.Logger forwarding to the stream.
func ProvideZapLogger(p LoggerParams) *zap.Logger {
	enab := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return rollbarlog.FromZapLevel(l) >= p.Level
	})
	return zap.New(rollbarlog.NewCore(p.Stream, enab))
}
