package config

import (
	"github.com/germanoeich/tweet-date/lib/util"
	"time"
)

var cfgSingleton TweetDateConfig

type TweetDateConfig struct {
	LogLevel       string
	LogFile        string
	LogFileMaxSize int
	LogFileBackups int
	Location       *time.Location
	HistorySize    int
	EnableMetrics  bool
	MetricsFile    string
}

func Get() TweetDateConfig {
	return cfgSingleton
}

func Parse() TweetDateConfig {
	logLevel := util.EnvGet("LOG_LEVEL", "info")
	logFile := util.EnvGet("LOG_FILE", "")
	logFileMaxSize := util.EnvGetInt("LOG_FILE_MAX_SIZE", 10)
	logFileBackups := util.EnvGetInt("LOG_FILE_BACKUPS", 3)
	timezone := util.EnvGet("TIMEZONE", "")
	historySize := util.EnvGetInt("HISTORY_SIZE", 20)
	enableMetrics := util.EnvGetBool("ENABLE_METRICS", false)
	metricsFile := util.EnvGet("METRICS_FILE", "tweet-date.prom")

	if historySize <= 0 {
		panic("HISTORY_SIZE must be positive")
	}

	cfgSingleton = TweetDateConfig{
		LogLevel:       logLevel,
		LogFile:        logFile,
		LogFileMaxSize: logFileMaxSize,
		LogFileBackups: logFileBackups,
		Location:       parseLocation(timezone),
		HistorySize:    historySize,
		EnableMetrics:  enableMetrics,
		MetricsFile:    metricsFile,
	}

	return cfgSingleton
}

// Empty means whatever zone the machine runs in, same as the browser did
func parseLocation(name string) *time.Location {
	if name == "" {
		return time.Local
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		panic("Failed to parse TIMEZONE")
	}
	return loc
}
