package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging returns a JSON logger writing to stdout at the given level.
// An unknown level falls back to info.
func SetupLogging(level string) *logrus.Logger {
	logger := &logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:      os.Stdout,
		Hooks:    make(logrus.LevelHooks),
		Level:    logrus.InfoLevel,
		ExitFunc: os.Exit,
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logger.WithField("level", level).Warn("SetupLogging.unknown level, using info")
		return logger
	}
	logger.SetLevel(parsed)
	return logger
}
