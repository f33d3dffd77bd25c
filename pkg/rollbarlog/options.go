package rollbarlog

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Stream.
type Option func(*Config)

// WithReporter uses an existing client and skips self-initialization.
func WithReporter(r Reporter) Option {
	return func(c *Config) {
		c.Rollbar = r
	}
}

// WithToken sets the access token for a self-initialized client.
func WithToken(token string) Option {
	return func(c *Config) {
		c.RollbarToken = token
	}
}

// WithClientOptions sets the options for a self-initialized client.
func WithClientOptions(opts ClientOptions) Option {
	return func(c *Config) {
		c.RollbarOptions = opts
	}
}

// WithEnvironment sets the Rollbar environment.
func WithEnvironment(env string) Option {
	return func(c *Config) {
		c.RollbarOptions.Environment = env
	}
}

// WithSerializers replaces the serializers exposed to log front-ends.
func WithSerializers(s Serializers) Option {
	return func(c *Config) {
		c.Serializers = s
	}
}

// WithMetrics registers the reports counter on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registerer = reg
	}
}

// WithLogger sets the logger used for construction diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
