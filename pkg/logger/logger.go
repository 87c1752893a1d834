package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Interface -.
type Interface interface {
	Debug(message interface{}, args ...interface{})
	Info(message string, args ...interface{})
	Warn(message string, args ...interface{})
	Error(message interface{}, args ...interface{})
	Fatal(message interface{}, args ...interface{})
	With(fields ...zap.Field) Interface
}

// Logger -.
type Logger struct {
	logger *zap.Logger
}

var _ Interface = (*Logger)(nil)

// New builds a zap logger writing to stdout. Unknown levels fall back to info,
// format is "json" or "console".
func New(level, format string) *Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if strings.ToLower(format) == "console" {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), parseLevel(level))

	return &Logger{logger: zap.New(core)}
}

// NewWithCore is used by tests to capture output.
func NewWithCore(core zapcore.Core) *Logger {
	return &Logger{logger: zap.New(core)}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Debug -.
func (l *Logger) Debug(message interface{}, args ...interface{}) {
	l.msg(zapcore.DebugLevel, message, args...)
}

// Info -.
func (l *Logger) Info(message string, args ...interface{}) {
	l.log(zapcore.InfoLevel, message, args...)
}

// Warn -.
func (l *Logger) Warn(message string, args ...interface{}) {
	l.log(zapcore.WarnLevel, message, args...)
}

// Error -.
func (l *Logger) Error(message interface{}, args ...interface{}) {
	l.msg(zapcore.ErrorLevel, message, args...)
}

// Fatal -.
func (l *Logger) Fatal(message interface{}, args ...interface{}) {
	l.msg(zapcore.FatalLevel, message, args...)

	os.Exit(1)
}

// With returns a child logger carrying fields on every entry.
func (l *Logger) With(fields ...zap.Field) Interface {
	return &Logger{logger: l.logger.With(fields...)}
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.logger.Sync()
}

func (l *Logger) log(level zapcore.Level, message string, args ...interface{}) {
	if ce := l.logger.Check(level, formatMessage(message, args...)); ce != nil {
		ce.Write()
	}
}

// msg accepts an error as message; a single trailing string arg is then the
// call site, as in l.Error(err, "restapi - v1 - analyze").
func (l *Logger) msg(level zapcore.Level, message interface{}, args ...interface{}) {
	switch msg := message.(type) {
	case error:
		text := msg.Error()
		if len(args) == 1 {
			if where, ok := args[0].(string); ok {
				text = where + ": " + text
				args = nil
			}
		}
		l.log(level, text, args...)
	case string:
		l.log(level, msg, args...)
	default:
		l.log(level, fmt.Sprintf("%s message %v has unknown type %T", level.CapitalString(), message, msg), args...)
	}
}

func formatMessage(message string, args ...interface{}) string {
	if len(args) == 0 {
		return message
	}

	return fmt.Sprintf(message, args...)
}
