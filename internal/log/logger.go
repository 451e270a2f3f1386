package log

import (
	"os"
	"strings"

	"github.com/Xunop/e-verse/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a no-op until Init is called, so packages can log from tests
// without any setup.
var Logger = zap.NewNop()

func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Logger.Fatal(msg, fields...)
}

// Init replaces the package logger with one built from opts.
func Init(opts *config.Options) {
	Logger = NewLogger(opts)
}

func Sync() {
	_ = Logger.Sync()
}

func NewLogger(opts *config.Options) *zap.Logger {
	rotationLog := &lumberjack.Logger{
		Filename:   opts.LogFile,
		MaxSize:    opts.LogFileMaxSize, // megabytes
		MaxBackups: opts.LogFileMaxBackups,
		MaxAge:     opts.LogFileMaxAge, // days
		Compress:   opts.LogCompress,
	}

	return newZap(rotationLog, parseLevel(opts.LogLevel))
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func newZap(rotationLog *lumberjack.Logger, level zapcore.Level) *zap.Logger {
	encodeConfig := zap.NewProductionEncoderConfig()
	encodeConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	fileEncoder := zapcore.NewJSONEncoder(encodeConfig)
	consoleEncoder := zapcore.NewConsoleEncoder(encodeConfig)

	// The console is for humans running the CLI, keep it to warnings and up
	// unless debugging.
	consoleLevel := zapcore.WarnLevel
	if level == zapcore.DebugLevel {
		consoleLevel = level
	}
	consoleWriter := zapcore.AddSync(os.Stderr)
	rotationWrite := zapcore.AddSync(rotationLog)

	consoleCore := zapcore.NewCore(consoleEncoder, consoleWriter, consoleLevel)
	rotationCore := zapcore.NewCore(fileEncoder, rotationWrite, level)

	core := zapcore.NewTee(consoleCore, rotationCore)

	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
}
