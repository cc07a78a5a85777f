package logging

import (
	"go.uber.org/zap"
)

// Setup builds the application logger. Verbose mode switches to zap's
// development config (human-readable, debug level); otherwise the production
// config (JSON, info level) is used. App identity fields are attached to
// every entry.
func Setup(verbose bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	return cfg.Build()
}
