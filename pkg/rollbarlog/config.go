package rollbarlog

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Config holds the construction-time settings of a Stream.
type Config struct {
	// Rollbar is an existing client. When set, no client is created.
	Rollbar Reporter

	// RollbarToken is the access token used to create a client when Rollbar is nil.
	RollbarToken string

	// RollbarOptions are passed to the created client.
	RollbarOptions ClientOptions

	// Serializers used by log front-ends. Defaults to RecoveringSerializers.
	Serializers Serializers

	// Registerer enables the reports counter when set.
	Registerer prometheus.Registerer

	// Logger receives construction diagnostics. Defaults to slog.Default.
	Logger *slog.Logger
}

// ClientOptions configure a self-initialized Rollbar client.
type ClientOptions struct {
	Environment string
	CodeVersion string
	ServerHost  string
	ServerRoot  string

	// Endpoint overrides the Rollbar API endpoint.
	Endpoint string

	// Enabled defaults to true when nil.
	Enabled *bool

	// Synchronous sends each item before returning instead of queueing it.
	Synchronous bool
}

func (o ClientOptions) enabled() bool {
	return o.Enabled == nil || *o.Enabled
}

func defaultConfig() *Config {
	return &Config{
		RollbarOptions: ClientOptions{
			Environment: "development",
		},
	}
}
