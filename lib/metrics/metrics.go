package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOk      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeEmpty   = "empty"
)

var (
	ErrorCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tweet_date_error",
		Help: "The total number of errors logged while running",
	})

	Lookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tweet_date_lookups",
		Help: "Submissions by outcome",
	}, []string{"outcome"})

	ClipboardFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tweet_date_clipboard_failures",
		Help: "Clipboard reads that failed and were ignored",
	})

	// How far past the Twitter epoch decoded ids land, in years
	DecodedAge = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tweet_date_decoded_years_since_epoch",
		Help:    "Years between the Twitter epoch and the decoded creation time",
		Buckets: []float64{1, 2, 4, 8, 12, 16, 20},
	})
)

func ObserveLookup(outcome string) {
	Lookups.With(map[string]string{"outcome": outcome}).Inc()
}

func ObserveDecodedAge(sinceEpochMs uint64) {
	DecodedAge.Observe(float64(sinceEpochMs) / (365.25 * 24 * 3600 * 1000))
}

// WriteTextfile dumps every registered metric in the node_exporter textfile format.
// There is no metrics server, the file is picked up by whatever collects it.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
