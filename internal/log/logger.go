// Package log builds the structured logger every component writes to.
package log

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Levels = []string{"debug", "info", "warn", "error"}

// New builds a JSON logger at level writing to output, which is a path or
// one of stdout and stderr.
func New(level, output string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if nil != err {
		return nil, errors.Wrapf(err, "log level %q", level)
	}
	if output == "" {
		output = "stderr"
	}

	config := zap.Config{
		Level:       zap.NewAtomicLevelAt(lvl),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	logger, err := config.Build()
	if nil != err {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger, nil
}
