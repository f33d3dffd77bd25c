package rollbarlogfx

import (
	"os"
	"strconv"

	"github.com/JailtonJunior94/devkit-rollbar/pkg/rollbarlog"
	"github.com/JailtonJunior94/devkit-rollbar/pkg/rollbarlog/noop"
	"go.uber.org/fx"
)

// ConfigModule provides the stream config from environment variables.
// Environment variables:
//   - ROLLBAR_TOKEN: Access token (required unless ROLLBAR_ENABLED=false)
//   - ROLLBAR_ENVIRONMENT: Environment name (default: "development")
//   - ROLLBAR_CODE_VERSION: Code version reported with each item
//   - ROLLBAR_SERVER_HOST: Host name reported with each item (default: os.Hostname)
//   - ROLLBAR_SERVER_ROOT: Repository root used to link stack frames
//   - ROLLBAR_ENDPOINT: API endpoint override
//   - ROLLBAR_ENABLED: "false" discards all reports (default: "true")
//   - ROLLBAR_SYNC: "true" sends items synchronously (default: "false")
//   - ROLLBAR_LEVEL: Minimum level forwarded by the log front-ends (default: "warn")
var ConfigModule = fx.Provide(ConfigFromEnv, LevelFromEnv)

// ConfigFromEnv creates the stream config from environment variables.
func ConfigFromEnv() rollbarlog.Config {
	host, _ := os.Hostname()
	enabled := getEnvBool("ROLLBAR_ENABLED", true)

	cfg := rollbarlog.Config{
		RollbarToken: getEnv("ROLLBAR_TOKEN", ""),
		RollbarOptions: rollbarlog.ClientOptions{
			Environment: getEnv("ROLLBAR_ENVIRONMENT", "development"),
			CodeVersion: getEnv("ROLLBAR_CODE_VERSION", ""),
			ServerHost:  getEnv("ROLLBAR_SERVER_HOST", host),
			ServerRoot:  getEnv("ROLLBAR_SERVER_ROOT", ""),
			Endpoint:    getEnv("ROLLBAR_ENDPOINT", ""),
			Enabled:     &enabled,
			Synchronous: getEnvBool("ROLLBAR_SYNC", false),
		},
	}
	if !enabled {
		cfg.Rollbar = noop.NewReporter()
	}
	return cfg
}

// LevelFromEnv reads the minimum forwarded level.
func LevelFromEnv() rollbarlog.Level {
	return rollbarlog.ParseLevel(getEnv("ROLLBAR_LEVEL", "warn"))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
