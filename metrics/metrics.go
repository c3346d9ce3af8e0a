// Package metrics exposes Prometheus counters and gauges for a connection's
// traffic: frames sent and received per MID, decode errors, and how long
// it's been since the last frame crossed the wire. It's the same
// counter/gauge-plus-/metrics-handler shape
// github.com/simeonmiteff/go-tcpinfo's exporter package uses, scaled down
// from its custom per-connection Collector to a handful of promauto
// vectors, since a tightening controller connection has no per-socket
// kernel stats to poll — only the frames this library itself decodes and
// encodes.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dezemand/openprotocol-go/protocol"
)

// Collector holds the metric vectors for one or more EventLoop connections.
// All fields are safe for concurrent use — the underlying prometheus types
// already are.
type Collector struct {
	framesSent     *prometheus.CounterVec
	framesReceived *prometheus.CounterVec
	decodeErrors   prometheus.Counter
	lastFrameUnix  prometheus.Gauge
}

// NewCollector builds and registers a Collector's metrics against reg. Pass
// prometheus.DefaultRegisterer to expose them on the default /metrics
// handler.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		framesSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "openprotocol",
			Name:      "frames_sent_total",
			Help:      "Number of Open Protocol frames written to the controller, by MID and revision.",
		}, []string{"mid", "revision"}),
		framesReceived: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "openprotocol",
			Name:      "frames_received_total",
			Help:      "Number of Open Protocol frames decoded from the controller, by MID and revision.",
		}, []string{"mid", "revision"}),
		decodeErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "openprotocol",
			Name:      "decode_errors_total",
			Help:      "Number of frames that failed to decode (excludes InsufficientBytesError retries, which aren't failures).",
		}),
		lastFrameUnix: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "openprotocol",
			Name:      "last_frame_unix_seconds",
			Help:      "Unix timestamp of the last frame sent or received, for alerting on a stalled connection.",
		}),
	}
}

// ObserveSent records an outbound frame.
func (c *Collector) ObserveSent(msg protocol.Message, unixNow int64) {
	mid, rev := msg.MidRevision()
	c.framesSent.WithLabelValues(strconv.Itoa(int(mid)), strconv.Itoa(int(rev))).Inc()
	c.lastFrameUnix.Set(float64(unixNow))
}

// ObserveReceived records an inbound frame.
func (c *Collector) ObserveReceived(msg protocol.Message, unixNow int64) {
	mid, rev := msg.MidRevision()
	c.framesReceived.WithLabelValues(strconv.Itoa(int(mid)), strconv.Itoa(int(rev))).Inc()
	c.lastFrameUnix.Set(float64(unixNow))
}

// ObserveDecodeError records a fatal decode failure (not a retry-triggering
// InsufficientBytesError, which FrameReader already handles internally).
func (c *Collector) ObserveDecodeError() {
	c.decodeErrors.Inc()
}
