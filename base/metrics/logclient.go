package metrics

import (
	"github.com/x-xyz/nftdapp/base/log"
)

// LogClient writes metrics to the debug log when no datadog agent is
// configured.
type LogClient struct {
	logger log.Logger
}

func newLogClient() *LogClient {
	return &LogClient{logger: log.Log().WithField("component", "metrics")}
}

func (lc *LogClient) emit(kind, name string, value interface{}, tags []string) {
	lc.logger.WithFields(log.Fields{
		"kind": kind,
		"key":  name,
		"val":  value,
		"tags": tags,
	}).Debug("metric")
}

func (lc *LogClient) Gauge(name string, value float64, tags []string, rate float64) error {
	lc.emit("gauge", name, value, tags)
	return nil
}

func (lc *LogClient) Count(name string, value int64, tags []string, rate float64) error {
	lc.emit("count", name, value, tags)
	return nil
}

func (lc *LogClient) Histogram(name string, value float64, tags []string, rate float64) error {
	lc.emit("histogram", name, value, tags)
	return nil
}

// TimeInMilliseconds value is in milliseconds
func (lc *LogClient) TimeInMilliseconds(name string, value float64, tags []string, rate float64) error {
	lc.emit("time", name, value, tags)
	return nil
}
