package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// Init replaces the global zap logger. Local environments get a human
// readable console logger, anything else logs JSON.
func Init(env string) error {
	var conf zap.Config
	switch env {
	case "dev", "local", "test":
		conf = zap.NewDevelopmentConfig()
		level.SetLevel(zapcore.DebugLevel)
	default:
		conf = zap.NewProductionConfig()
		level.SetLevel(zapcore.InfoLevel)
	}
	conf.Level = level

	l, err := conf.Build()
	if err != nil {
		return fmt.Errorf("conf.Build -> %w", err)
	}
	zap.ReplaceGlobals(l.With(zap.String("env", env)))

	return nil
}

// SetLevel changes the level of the global logger at runtime.
func SetLevel(name string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return fmt.Errorf("l.UnmarshalText -> %w", err)
	}
	level.SetLevel(l)

	return nil
}

func Level() zapcore.Level {
	return level.Level()
}
