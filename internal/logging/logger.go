// Package logging provides the explicitly constructed logger handed to the
// batch apply and preview layers. Commands receive a *Logger instead of
// reaching for a process-wide singleton, so verbosity and sinks stay a
// caller decision.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap with the handful of events the tool reports.
type Logger struct {
	zap *zap.Logger
}

// Options control where log output goes and how much of it is produced.
type Options struct {
	// Console receives human-readable log lines; defaults to os.Stderr.
	Console io.Writer
	// FilePath, when set, adds a JSON log file sink next to the console.
	FilePath string
	// Verbose lowers the console level from Info to Debug.
	Verbose bool
	// Quiet drops the console sink entirely; a file sink still applies.
	Quiet bool
}

// New creates a Logger with a human-readable console core and, when
// opts.FilePath is set, a JSON file core.
func New(opts Options) (*Logger, error) {
	var cores []zapcore.Core

	if !opts.Quiet {
		console := opts.Console
		if console == nil {
			console = os.Stderr
		}
		level := zapcore.InfoLevel
		if opts.Verbose {
			level = zapcore.DebugLevel
		}
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.TimeKey = "" // console lines stay short
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(console),
			level,
		))
	}

	if opts.FilePath != "" {
		logFile, err := os.OpenFile(opts.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(logFile),
			zapcore.DebugLevel,
		))
	}

	if len(cores) == 0 {
		return &Logger{zap: zap.NewNop()}, nil
	}
	return &Logger{zap: zap.New(zapcore.NewTee(cores...))}, nil
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() *Logger {
	return &Logger{zap: zap.NewNop()}
}

// Close flushes buffered entries. Called on shutdown.
func (l *Logger) Close() error {
	return l.zap.Sync()
}

// Applied records a successful merge of a .rej file into its target.
func (l *Logger) Applied(rejPath, targetPath string) {
	l.zap.Info("applied changes",
		zap.String("rej", rejPath),
		zap.String("target", targetPath),
	)
}

// FileFailed records a per-file failure; the batch keeps going.
func (l *Logger) FileFailed(stage, path string, err error) {
	l.zap.Error("file skipped",
		zap.String("stage", stage),
		zap.String("path", path),
		zap.Error(err),
	)
}

// Deleted records removal of a .rej file by the clean command.
func (l *Logger) Deleted(path string) {
	l.zap.Debug("deleted", zap.String("path", path))
}

// Debug forwards a free-form debug message.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.zap.Debug(msg, fields...)
}
