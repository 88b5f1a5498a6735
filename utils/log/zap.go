package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.Logger

func init() {

	// json encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	sinks := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}

	// optional file sink
	if path := os.Getenv("PALITEXT_LOG_FILE"); path != "" {
		logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			sinks = append(sinks, zapcore.AddSync(logFile))
		}
	}

	level := zapcore.InfoLevel
	if os.Getenv("PALITEXT_DEBUG") != "" {
		level = zapcore.DebugLevel
	}

	// new logger with core
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.NewMultiWriteSyncer(sinks...),
		level,
	)
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	defer logger.Sync()

	// replace global logger
	globalLogger = logger
}

func Info(ctx context.Context, msg string, fields ...zap.Field) {
	globalLogger.Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	globalLogger.Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zap.Field) {
	globalLogger.Error(msg, fields...)
}

func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	globalLogger.Debug(msg, fields...)
}
