package logging

import (
	"go.uber.org/zap"
)

// AppName is attached to every log entry.
const AppName = "jsxmerge"

// Logger is the global logger instance
var Logger *zap.Logger

// New builds a logger tagged with the application name and version. debug
// selects zap's development config, otherwise the production config is used.
func New(debug bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	return cfg.Build()
}

// Setup builds the global Logger and installs it as zap's global logger.
func Setup(debug bool, appName, appVersion string) error {
	logger, err := New(debug, appName, appVersion)
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	Logger = logger
	zap.ReplaceGlobals(Logger)
	return nil
}
