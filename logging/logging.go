package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the shared SugaredLogger. It starts as a nop so packages can log
// before (or without) InitLogger being called, which keeps tests quiet.
var Log = zap.NewNop().Sugar()

// InitLogger routes Log to filePath with size-based rotation.
func InitLogger(filePath string) error {
	lj := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(lj), zapcore.InfoLevel)
	Log = zap.New(core, zap.AddCaller()).Sugar()
	return nil
}

// Sync flushes buffered log entries; call on shutdown.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
