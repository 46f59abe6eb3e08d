package main

import (
	"io"

	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns a console logger on w. Warnings and errors by
// default, debug with verbose, errors only with quiet.
func newLogger(w io.Writer, verbose, quiet bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.WarnLevel
	switch {
	case verbose:
		level = zapcore.DebugLevel
	case quiet:
		level = zapcore.ErrorLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg.EncoderConfig),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core)
}

// setMaxProcs aligns GOMAXPROCS with the container CPU quota, logging the
// outcome at debug level. Returns the function restoring the old value.
func setMaxProcs(logger *zap.Logger) func() {
	// maxprocs.Set only fails on an invalid GOMAXPROCS env value; the
	// runtime default then stays in place.
	undo, err := maxprocs.Set(maxprocs.Logger(logger.Sugar().Debugf))
	if err != nil {
		logger.Debug("maxprocs", zap.Error(err))
	}
	return undo
}
