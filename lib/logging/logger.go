package logging

import (
	"github.com/germanoeich/tweet-date/lib/config"
	"github.com/germanoeich/tweet-date/lib/metrics"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"os"
	"regexp"
	"sync"
)

type GlobalHook struct {
}

// Shared links carry tracking params (?s=20&t=...), keep them out of the logs
var loggerHookRegex = regexp.MustCompile(`(https?://[^\s?#]+)[?#]\S*`)

func (h *GlobalHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *GlobalHook) Fire(e *logrus.Entry) error {
	e.Message = loggerHookRegex.ReplaceAllString(e.Message, "$1")
	if input, ok := e.Data["input"].(string); ok {
		e.Data["input"] = loggerHookRegex.ReplaceAllString(input, "$1")
	}
	if logrus.ErrorLevel >= e.Level {
		metrics.ErrorCounter.Inc()
	}
	return nil
}

var (
	outputOnce sync.Once
	output     io.Writer
)

// lumberjack must not have two Loggers on the same file, so every subsystem shares one writer
func getOutput() io.Writer {
	outputOnce.Do(func() {
		cfg := config.Get()
		if cfg.LogFile == "" {
			output = os.Stderr
			return
		}
		output = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogFileMaxSize,
			MaxBackups: cfg.LogFileBackups,
		}
	})
	return output
}

func GetLogger(subsystem string) *logrus.Entry {
	var logger = logrus.New()

	// config.Parse hasn't run in tests and library callers
	logLevel := config.Get().LogLevel
	if logLevel == "" {
		logLevel = "info"
	}
	lvl, err := logrus.ParseLevel(logLevel)

	if err != nil {
		panic("Failed to parse log level")
	}

	logger.SetLevel(lvl)
	logger.SetOutput(getOutput())
	logger.AddHook(&GlobalHook{})
	return logger.WithField("subsystem", subsystem)
}
