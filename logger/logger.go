// Package logger holds the process-wide zap logger shared by the enum engine
// and the protoc plugin.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type fileSink struct {
	fd *os.File
}

func (s fileSink) Write(p []byte) (n int, err error) {
	return s.fd.Write(p)
}

func (s fileSink) Sync() error {
	return s.fd.Sync()
}

func levelFromEnv() zapcore.Level {
	raw := os.Getenv("LOG_LEVEL")
	if raw == "" {
		return zapcore.InfoLevel
	}
	level, err := zapcore.ParseLevel(raw)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// openSink returns LOG_FILE truncated for this run, or stderr. protoc owns
// stdout for the plugin response, so logs never go there.
func openSink() *os.File {
	logPath := os.Getenv("LOG_FILE")
	if logPath == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return os.Stderr
	}
	return f
}

// Logger is the root logger. Components derive children with Named.
var Logger = zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(
	zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "logger",
		TimeKey:        "ts",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}), &fileSink{fd: openSink()}, levelFromEnv())).Named("enummeta")

// Named returns a child of Logger scoped to component.
func Named(component string) *zap.Logger {
	return Logger.Named(component)
}

func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}
