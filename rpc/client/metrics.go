package client

import (
	"fmt"
	"io"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/ValentinKolb/vcc/rpc/common"
)

// clientMetrics holds the metrics of one client
type clientMetrics struct {
	set *metrics.Set
}

func newClientMetrics() *clientMetrics {
	return &clientMetrics{set: metrics.NewSet()}
}

// observe records the outcome and duration of a call
func (m *clientMetrics) observe(ch common.Channel, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = common.CodeOf(err).String()
	}
	m.set.GetOrCreateCounter(fmt.Sprintf(`vcc_calls_total{channel=%q,outcome=%q}`, ch, outcome)).Inc()
	m.set.GetOrCreateHistogram(fmt.Sprintf(`vcc_call_duration_seconds{channel=%q}`, ch)).UpdateDuration(start)
}

// retry records a send retry
func (m *clientMetrics) retry(ch common.Channel) {
	m.set.GetOrCreateCounter(fmt.Sprintf(`vcc_send_retries_total{channel=%q}`, ch)).Inc()
}

// WriteMetrics writes the metrics of the client in Prometheus text format
func (c *Client) WriteMetrics(w io.Writer) {
	c.metrics.set.WritePrometheus(w)
}
