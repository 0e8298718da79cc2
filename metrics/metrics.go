package metrics

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

const (
	MetricsNamespace = "op_selector"
)

var (
	Debug                bool = true
	nonAlphanumericRegex      = regexp.MustCompile(`[^a-zA-Z ]+`)

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "errors_total",
		Help:      "Count of errors",
	}, []string{
		"error",
	})

	selectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "selections_total",
		Help:      "Count of suites evaluated, by mode in effect and decision",
	}, []string{
		"mode",
		"result",
	})

	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "mode_transitions_total",
		Help:      "Count of selector mode transitions",
	}, []string{
		"from",
		"to",
	})

	selectedSuites = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "selected_suites",
		Help:      "Number of suites selected by the latest run, by starting mode",
	}, []string{
		"mode",
	})
)

// errToLabel tries to make the error string a more valid Prometheus label
func errToLabel(err error) string {
	if err == nil {
		return "nil"
	}
	errClean := nonAlphanumericRegex.ReplaceAllString(err.Error(), "")
	errClean = strings.ReplaceAll(errClean, " ", "_")
	errClean = strings.ReplaceAll(errClean, "__", "_")
	return errClean
}

func RecordError(error string) {
	if Debug {
		log.Debug("metric inc",
			"m", "errors_total",
			"error", error,
		)
	}
	errorsTotal.WithLabelValues(error).Inc()
}

// RecordErrorDetails concats the error message to the label
// and also tries to clean the label to be a valid Prometheus label
func RecordErrorDetails(label string, err error) {
	if err == nil {
		return
	}
	label = fmt.Sprintf("%s.%s", label, errToLabel(err))
	RecordError(label)
}

func RecordSelection(mode string, selected bool) {
	result := "rejected"
	if selected {
		result = "selected"
	}
	selectionsTotal.WithLabelValues(mode, result).Inc()
}

// RecordSelections records a batch of decisions made under a single mode
func RecordSelections(mode string, selected int, rejected int) {
	selectionsTotal.WithLabelValues(mode, "selected").Add(float64(selected))
	selectionsTotal.WithLabelValues(mode, "rejected").Add(float64(rejected))
}

func RecordTransition(from string, to string) {
	if Debug {
		log.Debug("metric inc",
			"m", "mode_transitions_total",
			"from", from,
			"to", to)
	}
	transitionsTotal.WithLabelValues(from, to).Inc()
}

func RecordSelected(mode string, count int) {
	selectedSuites.WithLabelValues(mode).Set(float64(count))
}

// Push sends every collector registered with the default registry to a
// Prometheus Pushgateway. One-shot runs exit before a scrape could happen.
func Push(url string, job string) error {
	if url == "" {
		return nil
	}
	pusher := push.New(url, job).Gatherer(prometheus.DefaultGatherer)
	if err := pusher.Push(); err != nil {
		return fmt.Errorf("pushing metrics to %s: %w", url, err)
	}
	return nil
}
