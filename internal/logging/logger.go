// Package logging constructs the process-wide zap logger. Components receive
// the logger through their constructors; there is no package-level default.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a SugaredLogger. Dev mode uses the human-readable console
// encoder; production mode emits JSON. level accepts zap's atomic level
// strings ("debug", "info", "warn", "error"); empty or unknown means info.
func New(dev bool, level string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if dev {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	z, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return z.Sugar(), nil
}
