package discovery

import (
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// Logger receives the messages a Client emits while retrieving metadata.
// Discovery URLs are logged at debug level, failed retrievals and rejected
// documents at warn level.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything. It is the default.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// ZapLogger writes discovery messages to a zap.SugaredLogger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger returns a Logger backed by sugar.
func NewZapLogger(sugar *zap.SugaredLogger) Logger {
	return ZapLogger{sugar: sugar}
}

func (l ZapLogger) Debugf(format string, args ...any) { l.sugar.Debugf(format, args...) }
func (l ZapLogger) Infof(format string, args ...any)  { l.sugar.Infof(format, args...) }
func (l ZapLogger) Warnf(format string, args ...any)  { l.sugar.Warnf(format, args...) }
func (l ZapLogger) Errorf(format string, args ...any) { l.sugar.Errorf(format, args...) }

// ZerologLogger writes discovery messages to a zerolog.Logger. Messages
// below the logger's level are dropped before formatting.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger returns a Logger backed by logger.
func NewZerologLogger(logger zerolog.Logger) Logger {
	return ZerologLogger{logger: logger}
}

func (l ZerologLogger) Debugf(format string, args ...any) {
	l.emit(zerolog.DebugLevel, format, args)
}

func (l ZerologLogger) Infof(format string, args ...any) {
	l.emit(zerolog.InfoLevel, format, args)
}

func (l ZerologLogger) Warnf(format string, args ...any) {
	l.emit(zerolog.WarnLevel, format, args)
}

func (l ZerologLogger) Errorf(format string, args ...any) {
	l.emit(zerolog.ErrorLevel, format, args)
}

func (l ZerologLogger) emit(level zerolog.Level, format string, args []any) {
	// WithLevel returns nil for disabled levels; Msgf is a no-op on nil.
	l.logger.WithLevel(level).Msgf(format, args...)
}

// LogrusLogger writes discovery messages to a logrus.FieldLogger, which may
// be a *logrus.Logger or an *logrus.Entry carrying fields.
type LogrusLogger struct {
	logger logrus.FieldLogger
}

// NewLogrusLogger returns a Logger backed by logger.
func NewLogrusLogger(logger logrus.FieldLogger) Logger {
	return LogrusLogger{logger: logger}
}

func (l LogrusLogger) Debugf(format string, args ...any) { l.logger.Debugf(format, args...) }
func (l LogrusLogger) Infof(format string, args ...any)  { l.logger.Infof(format, args...) }
func (l LogrusLogger) Warnf(format string, args ...any)  { l.logger.Warnf(format, args...) }
func (l LogrusLogger) Errorf(format string, args ...any) { l.logger.Errorf(format, args...) }
