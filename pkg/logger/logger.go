// Package logger is the process-wide structured logger. Call sites pass
// alternating key-value pairs after the message.
package logger

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Level string `yaml:"level"`
}

var log = newDefault()

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

func InitGlobalLogger(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
}

func Debug(msg string, keyValues ...any) {
	log.WithFields(fields(keyValues)).Debug(msg)
}

func Info(msg string, keyValues ...any) {
	log.WithFields(fields(keyValues)).Info(msg)
}

func Warn(msg string, keyValues ...any) {
	log.WithFields(fields(keyValues)).Warn(msg)
}

func Error(msg string, keyValues ...any) {
	log.WithFields(fields(keyValues)).Error(msg)
}

func fields(keyValues []any) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			key = fmt.Sprint(keyValues[i])
		}
		f[key] = keyValues[i+1]
	}
	return f
}
