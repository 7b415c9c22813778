package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = New(os.Stdout, zapcore.InfoLevel)

// Init installs the process-wide JSON logger. LOG_LEVEL=debug enables debug output.
func Init() {
	level := zapcore.InfoLevel
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = zapcore.DebugLevel
	}
	log = New(os.Stdout, level)
	zap.ReplaceGlobals(log.Desugar())
}

// New returns a JSON logger writing to w. Fields are passed as key/value pairs.
func New(w io.Writer, level zapcore.Level) *zap.SugaredLogger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "time"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}

func Sync() error {
	return log.Sync()
}

func Info(msg string, args ...any) {
	log.Infow(msg, args...)
}

func Warn(msg string, args ...any) {
	log.Warnw(msg, args...)
}

func Error(msg string, args ...any) {
	log.Errorw(msg, args...)
}

func Debug(msg string, args ...any) {
	log.Debugw(msg, args...)
}
