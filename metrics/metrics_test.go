package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/dezemand/openprotocol-go/protocol"
)

func TestObserveSentIncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.ObserveSent(protocol.MID0001rev7{}, 1000)
	c.ObserveSent(protocol.MID0001rev7{}, 1001)

	got := testutil.ToFloat64(c.framesSent.WithLabelValues("1", "7"))
	if got != 2 {
		t.Fatalf("frames_sent_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.lastFrameUnix); got != 1001 {
		t.Fatalf("last_frame_unix_seconds = %v, want 1001", got)
	}
}

func TestObserveReceivedIncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.ObserveReceived(protocol.MID0002rev1{}, 2000)

	got := testutil.ToFloat64(c.framesReceived.WithLabelValues("2", "1"))
	if got != 1 {
		t.Fatalf("frames_received_total = %v, want 1", got)
	}
}

func TestObserveDecodeError(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.ObserveDecodeError()
	c.ObserveDecodeError()

	if got := testutil.ToFloat64(c.decodeErrors); got != 2 {
		t.Fatalf("decode_errors_total = %v, want 2", got)
	}
}
